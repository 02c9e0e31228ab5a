package api

import (
	"context"
	"net/http"

	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// GetAdminStats fetches platform-wide totals. The server rejects
// non-administrators.
func GetAdminStats(ctx context.Context, c *transport.Caller) (*types.AdminStatsResponse, error) {
	var resp types.AdminStatsResponse
	if err := c.Do(ctx, transport.Request{Path: "/admin/stats"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile changes the current user's username and email.
func UpdateProfile(ctx context.Context, c *transport.Caller, req types.UpdateProfileRequest) error {
	if err := types.ValidateNonEmpty(req.Username, "username"); err != nil {
		return err
	}
	if err := types.ValidateNonEmpty(req.Email, "email"); err != nil {
		return err
	}
	return c.Do(ctx, transport.Request{Path: "/update_profile", Method: http.MethodPost, Body: req}, nil)
}

// ChangePassword rotates the current user's password.
func ChangePassword(ctx context.Context, c *transport.Caller, req types.ChangePasswordRequest) error {
	if err := types.ValidateNonEmpty(req.CurrentPassword, "current_password"); err != nil {
		return err
	}
	if err := types.ValidateNonEmpty(req.NewPassword, "new_password"); err != nil {
		return err
	}
	return c.Do(ctx, transport.Request{Path: "/change_password", Method: http.MethodPost, Body: req}, nil)
}
