package vidsage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vidsage/vidsage-go/internal/api"
	"github.com/vidsage/vidsage-go/internal/job"
	"github.com/vidsage/vidsage-go/internal/types"
)

// QASession manages the optimistic question/answer exchange for one
// analysis session. Each entry moves Pending -> Answered on success or
// Pending -> Removed on failure.
//
// Ask appends a pending entry synchronously, so the UI renders the question
// before the network call resolves; the answer is reconciled in place later.
// Unrelated entries are never touched. One exchange at a time: a second Ask
// while one is in flight returns ErrBusy.
type QASession struct {
	c         *Client
	sessionID string

	mu          sync.Mutex
	entries     []types.Conversation
	inFlight    bool
	lastLocalID int64

	onChange func(entries []Conversation)
}

// NewQASession builds the exchange manager for sessionID, seeded with the
// conversation history from /results.
func (c *Client) NewQASession(sessionID string, initial []Conversation) *QASession {
	q := &QASession{c: c, sessionID: sessionID}
	q.entries = append(q.entries, initial...)
	for _, e := range initial {
		if e.ID > q.lastLocalID {
			q.lastLocalID = e.ID
		}
	}
	return q
}

// SetOnChange installs a hook fired after every committed mutation of the
// entry sequence, with a snapshot of the new sequence. UI hosts typically
// scroll to the newest entry here; the hook never runs before the mutation
// it reports.
func (q *QASession) SetOnChange(fn func(entries []Conversation)) {
	q.mu.Lock()
	q.onChange = fn
	q.mu.Unlock()
}

// Entries returns a snapshot of the conversation in chat order.
func (q *QASession) Entries() []Conversation {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// InFlight reports whether an exchange is currently awaiting its answer.
func (q *QASession) InFlight() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inFlight
}

// Ask submits a question. Blank input is rejected with ErrEmptyQuestion
// before anything is appended or sent; a second question while one is in
// flight is rejected with ErrBusy.
//
// The pending entry's locally generated id is captured here and used for
// every later reconciliation step, so elapsed time can never make the
// rollback target a different entry.
func (q *QASession) Ask(ctx context.Context, question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}

	q.mu.Lock()
	if q.inFlight {
		q.mu.Unlock()
		return ErrBusy
	}
	localID := time.Now().UnixMilli()
	if localID <= q.lastLocalID {
		localID = q.lastLocalID + 1
	}
	q.lastLocalID = localID
	q.entries = append(q.entries, types.Conversation{
		ID:        localID,
		Question:  question,
		Answer:    types.PendingAnswer,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	q.inFlight = true
	snap := q.snapshotLocked()
	hook := q.onChange
	q.mu.Unlock()

	if hook != nil {
		hook(snap)
	}

	shard := job.ShardLabel(q.sessionID)
	submitErr := q.c.exec.Submit(ctx, q.sessionID, job.New(func(jobCtx context.Context) error {
		resp, err := api.AskQuestion(jobCtx, q.c.caller, types.AskRequest{
			SessionID: q.sessionID,
			Question:  question,
		})
		if err != nil {
			// Transport already toasted the raw failure; this one tells the
			// user what to do about it.
			q.c.notifier.Error("Failed to get an answer. Please try again.")
			q.removeEntry(localID)
			questionsFailedTotal.WithLabelValues(shard).Inc()
			return nil // exchange rolled back, nothing left to retry
		}
		q.resolveEntry(localID, resp)
		return nil
	}))
	if submitErr != nil {
		q.removeEntry(localID)
		return submitErr
	}

	questionsEnqueuedTotal.WithLabelValues(shard).Inc()
	return nil
}

// Wait blocks until every previously submitted exchange for this session
// has been reconciled.
func (q *QASession) Wait(ctx context.Context) error {
	return q.c.AwaitIdle(ctx, q.sessionID)
}

// resolveEntry replaces exactly the entry created under localID: the id
// becomes the server-assigned one when provided (the local id is kept
// otherwise) and the pending sentinel becomes the real answer. A targeted
// mutation, not a list replace - all other entries are untouched.
func (q *QASession) resolveEntry(localID int64, resp *types.AskResponse) {
	q.mu.Lock()
	for i := range q.entries {
		if q.entries[i].ID == localID {
			if resp.ConversationID != 0 {
				q.entries[i].ID = resp.ConversationID
			}
			q.entries[i].Answer = resp.Answer
			break
		}
	}
	q.inFlight = false
	snap := q.snapshotLocked()
	hook := q.onChange
	q.mu.Unlock()

	if hook != nil {
		hook(snap)
	}
}

// removeEntry rolls back the entry created under localID.
func (q *QASession) removeEntry(localID int64) {
	q.mu.Lock()
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.ID != localID {
			kept = append(kept, e)
		}
	}
	q.entries = kept
	q.inFlight = false
	snap := q.snapshotLocked()
	hook := q.onChange
	q.mu.Unlock()

	if hook != nil {
		hook(snap)
	}
}

func (q *QASession) snapshotLocked() []Conversation {
	return append([]Conversation(nil), q.entries...)
}
