// Package transport is the single chokepoint for every HTTP call the SDK
// makes. It normalizes request construction (JSON vs multipart bodies,
// header merging, per-request ids), collapses all failure modes into
// RequestError, special-cases transcript downloads, and surfaces every
// failure to the configured Notifier exactly once before propagating it.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// genericFailure is shown when the server gives no usable message.
const genericFailure = "Something went wrong"

// Request describes one HTTP call.
//
// Body and Form are mutually exclusive. A non-nil Form is sent as multipart
// with the boundary content-type the form itself produced; a non-nil Body is
// serialized to JSON with an application/json content-type. Header entries
// are merged on top of the defaults and may override them.
type Request struct {
	Path   string
	Method string // defaults to GET
	Body   any
	Form   *FormPayload
	Header http.Header
}

// RequestError is the one error kind every failed call collapses into:
// network failure, non-2xx status, malformed response body. Message is safe
// to show to the user.
type RequestError struct {
	StatusCode int // zero for transport-level failures
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("request failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

// Caller issues requests against one backend. The http.Client must carry a
// cookie jar so the server's session cookie rides along automatically.
type Caller struct {
	baseURL     string
	http        *http.Client
	notifier    Notifier
	downloadDir string
}

// New constructs a Caller. notifier must not be nil (use Nop to opt out of
// transport-level user messaging).
func New(baseURL string, httpClient *http.Client, notifier Notifier, downloadDir string) *Caller {
	return &Caller{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        httpClient,
		notifier:    notifier,
		downloadDir: downloadDir,
	}
}

// Do executes req and decodes the JSON response into out (which may be nil
// when the caller only needs the ack). Download-path requests are routed to
// the binary handler; pass a *Download to receive the saved file's location.
//
// Every failure path notifies the user once and returns a *RequestError.
func (c *Caller) Do(ctx context.Context, req Request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	httpReq, err := c.build(ctx, req)
	if err != nil {
		return c.fail(req, &RequestError{Message: err.Error()})
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return c.fail(req, &RequestError{Message: err.Error()})
	}
	defer func() { _ = resp.Body.Close() }()

	if isDownloadPath(req.Path) {
		return c.consumeDownload(req, resp, out)
	}

	return c.consumeJSON(req, resp, out)
}

func (c *Caller) build(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body *bytes.Reader
	header := make(http.Header)
	switch {
	case req.Form != nil:
		// Multipart: the form supplies its own boundary-encoded type,
		// never a caller-forced one.
		body = bytes.NewReader(req.Form.Data)
		header.Set("Content-Type", req.Form.ContentType)
	case req.Body != nil:
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
		header.Set("Content-Type", "application/json")
	default:
		body = bytes.NewReader(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	for k, vs := range header {
		httpReq.Header[k] = vs
	}
	// Caller-supplied headers win over defaults.
	for k, vs := range req.Header {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	return httpReq, nil
}

func (c *Caller) consumeJSON(req Request, resp *http.Response, out any) error {
	var raw json.RawMessage
	decodeErr := json.NewDecoder(resp.Body).Decode(&raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := genericFailure
		if decodeErr == nil {
			var envelope struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
				msg = envelope.Message
			}
		}
		return c.fail(req, &RequestError{StatusCode: resp.StatusCode, Message: msg})
	}

	if decodeErr != nil {
		return c.fail(req, &RequestError{StatusCode: resp.StatusCode, Message: genericFailure})
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return c.fail(req, &RequestError{StatusCode: resp.StatusCode, Message: genericFailure})
	}
	return nil
}

// fail notifies the user and records the failure before returning err, so
// call sites get exactly one toast per failed request.
func (c *Caller) fail(req Request, err *RequestError) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	requestFailuresTotal.WithLabelValues(method).Inc()
	c.notifier.Error(err.Message)
	return err
}
