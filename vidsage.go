// Package vidsage is the client SDK for the VidSage video-analysis service:
// upload a video or hand over a link, then read back the transcript, the
// summary and answers to follow-up questions.
//
// The package mirrors the web front-end's API/session layer: one transport
// chokepoint, a session/auth state holder, an optimistic Q&A exchange
// manager, an upload form model and list views with confirmed mutations.
package vidsage

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"sync/atomic"
	"time"

	"github.com/vidsage/vidsage-go/internal/api"
	"github.com/vidsage/vidsage-go/internal/job"
	"github.com/vidsage/vidsage-go/internal/shardqueue"
	"github.com/vidsage/vidsage-go/internal/transport"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL     string
	http        *http.Client
	caller      *transport.Caller
	exec        executor
	notifier    transport.Notifier
	downloadDir string

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given backend base URL. The underlying
// http.Client carries a cookie jar, so the session cookie set by /login
// authenticates every later call without explicit token handling.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 30 * time.Second, Jar: jar},
		notifier: transport.LogNotifier{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}
	c.caller = transport.New(c.baseURL, c.http, c.notifier, c.downloadDir)

	return c, nil
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// AwaitIdle blocks until all previously submitted question jobs for the
// given sessionID have been executed. It works by submitting a no-op job
// and waiting for it to run, thereby guaranteeing FIFO ordering has flushed.
func (c *Client) AwaitIdle(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	j := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, sessionID, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor builds the shardqueue executor from SQ_* environment
// variables, falling back to its built-in defaults.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		cfg = shardqueue.Config{}
	}
	return shardqueue.NewShardExecutor(cfg)
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Me asks the backend who the current session cookie belongs to.
func (c *Client) Me(ctx context.Context) (*AuthResponse, error) {
	return api.Me(ctx, c.caller)
}

// Login posts credentials and returns the server's auth envelope.
// Stateful session tracking lives in Auth; this is the raw call.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return api.Login(ctx, c.caller, req)
}

// Signup creates an account and returns the server's auth envelope.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	return api.Signup(ctx, c.caller, req)
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return api.Logout(ctx, c.caller)
}

// --------------------------------------------------------------------
// Video processing operations
// --------------------------------------------------------------------

// ProcessVideo submits a multipart source payload built by UploadForm and
// returns the new analysis session id.
func (c *Client) ProcessVideo(ctx context.Context, form *transport.FormPayload) (*ProcessResponse, error) {
	resp, err := api.ProcessVideo(ctx, c.caller, form)
	if err != nil {
		return nil, err
	}
	uploadsSubmittedTotal.Inc()
	return resp, nil
}

// Results fetches the finished analysis for a session.
func (c *Client) Results(ctx context.Context, sessionID string) (*ResultsResponse, error) {
	return api.GetResults(ctx, c.caller, sessionID)
}

// Ask posts one follow-up question synchronously. The optimistic,
// FIFO-ordered path lives in QASession.
func (c *Client) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	return api.AskQuestion(ctx, c.caller, req)
}

// DownloadTranscript saves the session transcript into the download
// directory and reports where it landed.
func (c *Client) DownloadTranscript(ctx context.Context, sessionID string) (*Download, error) {
	d, err := api.DownloadTranscript(ctx, c.caller, sessionID)
	if err != nil {
		return nil, err
	}
	transcriptsDownloadedTotal.Inc()
	return d, nil
}

// --------------------------------------------------------------------
// Collections and stats
// --------------------------------------------------------------------

// HistorySessions lists the current user's analysis sessions.
func (c *Client) HistorySessions(ctx context.Context) ([]AnalysisSession, error) {
	resp, err := api.GetHistory(ctx, c.caller)
	if err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// DeleteSession removes one analysis session server-side.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return api.DeleteSession(ctx, c.caller, sessionID)
}

// Dashboard fetches the per-user dashboard.
func (c *Client) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	return api.GetDashboard(ctx, c.caller)
}

// ContactMessages lists contact-form messages for moderation.
func (c *Client) ContactMessages(ctx context.Context) ([]ContactMessage, error) {
	resp, err := api.ListContactMessages(ctx, c.caller)
	if err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// MarkMessage flips a contact message's read flag server-side.
func (c *Client) MarkMessage(ctx context.Context, messageID int) error {
	return api.MarkMessage(ctx, c.caller, messageID)
}

// DeleteMessage removes a contact message server-side.
func (c *Client) DeleteMessage(ctx context.Context, messageID int) error {
	return api.DeleteMessage(ctx, c.caller, messageID)
}

// SubmitContactForm sends a public contact-form message.
func (c *Client) SubmitContactForm(ctx context.Context, req ContactRequest) error {
	return api.SubmitContactForm(ctx, c.caller, req)
}

// AdminStats fetches platform-wide totals (admin only).
func (c *Client) AdminStats(ctx context.Context) (*AdminStatsResponse, error) {
	return api.GetAdminStats(ctx, c.caller)
}

// UpdateProfile changes the current user's username and email.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return api.UpdateProfile(ctx, c.caller, req)
}

// ChangePassword rotates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return api.ChangePassword(ctx, c.caller, req)
}
