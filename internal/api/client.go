// Package api is the typed client for the remote Kisan Saathi REST API.
// Every failure is translated into an apperr so handlers can surface the
// server-supplied message when there is one and a generic one when not.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/neekunjchaturvedi/kisanfront/internal/shared/apperr"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string // Bearer token, empty for unauthenticated calls
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends the given Bearer token.
// Handlers call this per request with the session's access token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

const msgServerUnreachable = "Server not responding. Please check your connection."

type envelope struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	AccessToken string            `json:"accessToken"`
	User        *User             `json:"user"`
	Orders      []OrderRecord     `json:"orders"`
	Order       *OrderRecord      `json:"order"`
	Result      *struct {
		URL string `json:"url"`
	} `json:"result"`
	Data json.RawMessage `json:"data"`
}

func (c *Client) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", body, map[int]string{
		http.StatusUnauthorized:    "Invalid email or password. Please try again.",
		http.StatusTooManyRequests: "Too many login attempts. Please try again later.",
	})
	if err != nil {
		return LoginResult{}, err
	}
	if !env.Success || env.User == nil {
		msg := env.Message
		if msg == "" {
			msg = "Invalid credentials. Please try again."
		}
		return LoginResult{}, apperr.UnauthorizedErr(msg)
	}
	return LoginResult{AccessToken: env.AccessToken, User: *env.User}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}

func (c *Client) ListOrders(ctx context.Context) ([]OrderRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/orders/all", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// UpdateOrder sends one status/notes write. The returned record may be nil:
// some server versions respond without the updated order.
func (c *Client) UpdateOrder(ctx context.Context, id, status, notes string) (*OrderRecord, error) {
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	env, err := c.do(ctx, http.MethodPut, "/api/admin/orders/update/"+url.PathEscape(id), body, nil)
	if err != nil {
		return nil, err
	}
	return env.Order, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]CategoryRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/products/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	var cats []CategoryRecord
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &cats); err != nil {
			return nil, apperr.Wrap(fmt.Errorf("decode categories: %w", err))
		}
	}
	return cats, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]ProductRecord, error) {
	return c.products(ctx, "/api/admin/products/get")
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]ProductRecord, error) {
	return c.products(ctx, "/api/admin/products/category/"+url.PathEscape(category))
}

func (c *Client) products(ctx context.Context, path string) ([]ProductRecord, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var items []ProductRecord
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, apperr.Wrap(fmt.Errorf("decode products: %w", err))
		}
	}
	return items, nil
}

func (c *Client) AddProduct(ctx context.Context, in ProductInput) (*ProductRecord, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/admin/products/add", in, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Failed to add product. Please try again."
		}
		return nil, apperr.InvalidErr(msg, nil)
	}
	var p ProductRecord
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &p); err == nil {
			return &p, nil
		}
	}
	return nil, nil
}

// UploadImage streams one file as multipart form data and returns the public
// URL the server stored it under.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", apperr.Wrap(err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", apperr.Wrap(err)
	}
	if err := mw.Close(); err != nil {
		return "", apperr.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/products/upload-image", &buf)
	if err != nil {
		return "", apperr.Wrap(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	env, err := c.send(req, nil)
	if err != nil {
		return "", err
	}
	if !env.Success || env.Result == nil || env.Result.URL == "" {
		msg := env.Message
		if msg == "" {
			msg = "Image upload failed. Please try again."
		}
		return "", apperr.InvalidErr(msg, nil)
	}
	return env.Result.URL, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, statusMsgs map[int]string) (*envelope, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, statusMsgs)
}

func (c *Client) send(req *http.Request, statusMsgs map[int]string) (*envelope, error) {
	token := c.token
	if token == "" {
		token = TokenFromContext(req.Context())
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.UnavailableErr(msgServerUnreachable, err)
	}
	defer res.Body.Close()

	var env envelope
	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, apperr.UnavailableErr(msgServerUnreachable, err)
	}
	// Error responses still carry a JSON {message}; a decode failure just
	// leaves the envelope empty.
	_ = json.Unmarshal(raw, &env)

	if res.StatusCode >= 400 {
		msg := env.Message
		if override, ok := statusMsgs[res.StatusCode]; ok {
			msg = override
		}
		if msg == "" {
			msg = fmt.Sprintf("Request failed (%d). Please try again.", res.StatusCode)
		}
		err := fmt.Errorf("api %s %s: status %d", req.Method, req.URL.Path, res.StatusCode)
		switch res.StatusCode {
		case http.StatusUnauthorized:
			return nil, &apperr.AppError{Kind: apperr.Unauthorized, PublicMsg: msg, Err: err}
		case http.StatusForbidden:
			return nil, &apperr.AppError{Kind: apperr.Forbidden, PublicMsg: msg, Err: err}
		case http.StatusNotFound:
			return nil, &apperr.AppError{Kind: apperr.NotFound, PublicMsg: msg, Err: err}
		case http.StatusBadRequest, http.StatusTooManyRequests, http.StatusConflict:
			return nil, &apperr.AppError{Kind: apperr.Invalid, PublicMsg: msg, Err: err}
		default:
			return nil, &apperr.AppError{Kind: apperr.Internal, PublicMsg: msg, Err: err}
		}
	}
	return &env, nil
}
