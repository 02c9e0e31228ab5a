package vidsage

import (
	"context"
	"fmt"
	"sync"

	"github.com/vidsage/vidsage-go/internal/api"
	"github.com/vidsage/vidsage-go/internal/types"
)

// Moderation is the admin view over contact-form messages. Same discipline
// as History: the server confirms first, the local collection changes after.
type Moderation struct {
	c *Client

	mu       sync.RWMutex
	messages []types.ContactMessage

	// Confirm gates Delete. nil means proceed.
	Confirm func(m ContactMessage) bool
}

// NewModeration builds an empty moderation view; call Load to populate it.
func (c *Client) NewModeration() *Moderation {
	return &Moderation{c: c}
}

// Load fetches all contact messages into local state.
func (m *Moderation) Load(ctx context.Context) error {
	resp, err := api.ListContactMessages(ctx, m.c.caller)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.messages = resp.Messages
	m.mu.Unlock()
	return nil
}

// Messages returns a snapshot of the collection.
func (m *Moderation) Messages() []ContactMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]ContactMessage(nil), m.messages...)
}

// ToggleRead flips one message's read flag, local state following only
// after the server acknowledged.
func (m *Moderation) ToggleRead(ctx context.Context, messageID int) error {
	if err := api.MarkMessage(ctx, m.c.caller, messageID); err != nil {
		return err
	}

	m.mu.Lock()
	for i := range m.messages {
		if m.messages[i].ID == messageID {
			m.messages[i].IsRead = !m.messages[i].IsRead
			break
		}
	}
	m.mu.Unlock()

	m.c.notifier.Success("Message status updated")
	return nil
}

// Delete removes one message after confirmation and server success.
// Declining the confirmation is a silent no-op.
func (m *Moderation) Delete(ctx context.Context, messageID int) error {
	m.mu.RLock()
	var target *ContactMessage
	for i := range m.messages {
		if m.messages[i].ID == messageID {
			msg := m.messages[i]
			target = &msg
			break
		}
	}
	m.mu.RUnlock()
	if target == nil {
		return fmt.Errorf("unknown message %d", messageID)
	}

	if m.Confirm != nil && !m.Confirm(*target) {
		return nil
	}

	if err := api.DeleteMessage(ctx, m.c.caller, messageID); err != nil {
		return err
	}

	m.mu.Lock()
	kept := m.messages[:0]
	for _, msg := range m.messages {
		if msg.ID != messageID {
			kept = append(kept, msg)
		}
	}
	m.messages = kept
	m.mu.Unlock()

	m.c.notifier.Success("Message deleted successfully")
	return nil
}
