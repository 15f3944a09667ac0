package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neekunjchaturvedi/kisanfront/internal/shared/apperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@ks.in", body["identifier"])
		assert.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"accessToken": "tok-abc",
			"user": map[string]string{
				"id": "u1", "name": "Admin", "email": "admin@ks.in", "role": "admin",
			},
		})
	})

	res, err := c.Login(context.Background(), "admin@ks.in", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", res.AccessToken)
	assert.Equal(t, "admin", res.User.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "bad creds"})
	})

	_, err := c.Login(context.Background(), "x", "y")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unauthorized, ae.Kind)
	// the friendly override wins over the server message for 401 on login
	assert.Equal(t, "Invalid email or password. Please try again.", ae.PublicMsg)
}

func TestLogin_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Login(context.Background(), "x", "y")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Equal(t, "Too many login attempts. Please try again later.", ae.PublicMsg)
}

func TestServerUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)

	_, err := c.ListOrders(context.Background())
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unavailable, ae.Kind)
	assert.Equal(t, "Server not responding. Please check your connection.", ae.PublicMsg)
	assert.Equal(t, http.StatusBadGateway, apperr.HTTPStatus(err))
}

func TestListOrders_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/orders/all", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"orders": []map[string]any{
				{"_id": "o1", "status": "Pending", "totalAmount": "499.50", "createdAt": "2024-11-15T10:30:00Z"},
			},
		})
	})

	got, err := c.WithToken("tok-abc").ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "Pending", got[0].Status)
	assert.Equal(t, "499.5", got[0].TotalAmount.String())
}

func TestContextTokenAuthenticatesCalls(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ctx-tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	ctx := ContextWithToken(context.Background(), "ctx-tok")
	_, err := c.ListOrders(ctx)
	require.NoError(t, err)
}

func TestExplicitTokenWinsOverContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer explicit", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	ctx := ContextWithToken(context.Background(), "ctx-tok")
	_, err := c.WithToken("explicit").ListOrders(ctx)
	require.NoError(t, err)
}

func TestUpdateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/admin/orders/update/o1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Shipped", body["status"])
		assert.Equal(t, "leave at gate", body["notes"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"order":   map[string]any{"_id": "o1", "status": "Shipped", "createdAt": "2024-11-15T10:30:00Z"},
		})
	})

	rec, err := c.UpdateOrder(context.Background(), "o1", "Shipped", "leave at gate")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Shipped", rec.Status)
}

func TestUpdateOrder_NoEcho(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// empty notes are omitted from the payload
		_, hasNotes := body["notes"]
		assert.False(t, hasNotes)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	rec, err := c.UpdateOrder(context.Background(), "o1", "Shipped", "")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestListCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/products/categories", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"name": "Seeds", "count": 12}},
		})
	})

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Seeds", cats[0].Name)
	assert.Equal(t, 12, cats[0].Count)
}

func TestListProductsByCategory_EscapesPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/products/category/Farm%20Tools", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	})

	_, err := c.ListProductsByCategory(context.Background(), "Farm Tools")
	require.NoError(t, err)
}

func TestAddProduct_ServerRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "SKU already exists"})
	})

	_, err := c.AddProduct(context.Background(), ProductInput{ProductName: "x"})
	require.Error(t, err)
	assert.Equal(t, "SKU already exists", apperr.PublicMessage(err))
}

func TestUploadImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/products/upload-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "photo.jpg", hdr.Filename)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"result":  map[string]string{"url": "https://cdn.example.com/photo.jpg"},
		})
	})

	url, err := c.UploadImage(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", url)
}

func TestUploadImage_MissingURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	_, err := c.UploadImage(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "Image upload failed. Please try again.", apperr.PublicMessage(err))
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   apperr.Kind
	}{
		{http.StatusBadRequest, apperr.Invalid},
		{http.StatusUnauthorized, apperr.Unauthorized},
		{http.StatusForbidden, apperr.Forbidden},
		{http.StatusNotFound, apperr.NotFound},
		{http.StatusConflict, apperr.Invalid},
		{http.StatusInternalServerError, apperr.Internal},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := c.ListOrders(context.Background())
		require.Error(t, err, tt.status)
		ae, ok := apperr.As(err)
		require.True(t, ok, tt.status)
		assert.Equal(t, tt.kind, ae.Kind, tt.status)
	}
}
