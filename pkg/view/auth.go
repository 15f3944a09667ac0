package view

type LoginForm struct {
	Identifier string
	RememberMe bool
}

type LoginPage struct {
	Form      LoginForm
	Errors    map[string]string
	PageError string // credentials / transport error, not tied to a field
}
