package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// SubmitContactForm sends a public contact-form message.
func SubmitContactForm(ctx context.Context, c *transport.Caller, req types.ContactRequest) error {
	if err := types.ValidateNonEmpty(req.Name, "name"); err != nil {
		return err
	}
	if err := types.ValidateNonEmpty(req.Email, "email"); err != nil {
		return err
	}
	if err := types.ValidateNonEmpty(req.Message, "message"); err != nil {
		return err
	}
	return c.Do(ctx, transport.Request{Path: "/contact", Method: http.MethodPost, Body: req}, nil)
}

// ListContactMessages fetches all contact messages for moderation.
func ListContactMessages(ctx context.Context, c *transport.Caller) (*types.MessagesResponse, error) {
	var resp types.MessagesResponse
	if err := c.Do(ctx, transport.Request{Path: "/contact"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkMessage flips a contact message's read flag server-side.
func MarkMessage(ctx context.Context, c *transport.Caller, messageID int) error {
	return c.Do(ctx, transport.Request{Path: fmt.Sprintf("/mark_message/%d", messageID)}, nil)
}

// DeleteMessage removes a contact message.
func DeleteMessage(ctx context.Context, c *transport.Caller, messageID int) error {
	return c.Do(ctx, transport.Request{
		Path:   fmt.Sprintf("/delete_message/%d", messageID),
		Method: http.MethodPost,
	}, nil)
}
