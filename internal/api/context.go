package api

import "context"

type tokenKey struct{}

// ContextWithToken attaches the session's access token to a request context.
// The session middleware sets it once per request; every client call made
// with that context is then authenticated without threading the token
// through each service.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}
