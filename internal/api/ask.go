package api

import (
	"context"
	"net/http"

	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// AskQuestion posts one follow-up question for an analysis session. The
// server may omit conversation_id; callers then keep their local id.
func AskQuestion(ctx context.Context, c *transport.Caller, req types.AskRequest) (*types.AskResponse, error) {
	if err := types.ValidateIDPresent(req.SessionID, "session_id"); err != nil {
		return nil, err
	}
	if err := types.ValidateNonEmpty(req.Question, "question"); err != nil {
		return nil, err
	}
	var resp types.AskResponse
	err := c.Do(ctx, transport.Request{Path: "/ask", Method: http.MethodPost, Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
