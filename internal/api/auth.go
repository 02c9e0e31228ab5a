// Package api holds one stateless function per backend endpoint. Each takes
// the shared transport.Caller, so the chokepoint rules (cookie credentials,
// body serialization, error collapsing) apply uniformly.
package api

import (
	"context"
	"net/http"

	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// Me asks the backend who the session cookie belongs to.
func Me(ctx context.Context, c *transport.Caller) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	if err := c.Do(ctx, transport.Request{Path: "/"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login posts credentials. A response without a User means the credentials
// were rejected; Message says why.
func Login(ctx context.Context, c *transport.Caller, req types.LoginRequest) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	err := c.Do(ctx, transport.Request{Path: "/login", Method: http.MethodPost, Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup creates an account. Symmetric to Login.
func Signup(ctx context.Context, c *transport.Caller, req types.SignupRequest) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	err := c.Do(ctx, transport.Request{Path: "/signup", Method: http.MethodPost, Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the server-side session.
func Logout(ctx context.Context, c *transport.Caller) error {
	return c.Do(ctx, transport.Request{Path: "/logout"}, nil)
}
