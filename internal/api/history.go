package api

import (
	"context"
	"net/http"

	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// GetHistory lists the current user's analysis sessions, newest first.
func GetHistory(ctx context.Context, c *transport.Caller) (*types.HistoryResponse, error) {
	var resp types.HistoryResponse
	if err := c.Do(ctx, transport.Request{Path: "/history"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSession removes one analysis session and its conversations.
func DeleteSession(ctx context.Context, c *transport.Caller, sessionID string) error {
	if err := types.ValidateIDPresent(sessionID, "sessionId"); err != nil {
		return err
	}
	return c.Do(ctx, transport.Request{Path: "/delete_session/" + sessionID, Method: http.MethodPost}, nil)
}

// GetDashboard fetches the per-user dashboard: recent sessions plus totals.
func GetDashboard(ctx context.Context, c *transport.Caller) (*types.DashboardResponse, error) {
	var resp types.DashboardResponse
	if err := c.Do(ctx, transport.Request{Path: "/dashboard"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
