package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// ProcessVideo submits a multipart source payload (local file or YouTube
// URL, see the upload form) and returns the new analysis session's id.
func ProcessVideo(ctx context.Context, c *transport.Caller, form *transport.FormPayload) (*types.ProcessResponse, error) {
	if form == nil {
		return nil, fmt.Errorf("form payload is required")
	}
	var resp types.ProcessResponse
	err := c.Do(ctx, transport.Request{Path: "/process", Method: http.MethodPost, Form: form}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetResults fetches the finished analysis for a session: the session
// record, its conversation history and the playable video URL.
func GetResults(ctx context.Context, c *transport.Caller, sessionID string) (*types.ResultsResponse, error) {
	if err := types.ValidateIDPresent(sessionID, "sessionId"); err != nil {
		return nil, err
	}
	var resp types.ResultsResponse
	if err := c.Do(ctx, transport.Request{Path: "/results/" + sessionID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadTranscript saves the session's transcript file locally. The
// transport derives the filename from Content-Disposition.
func DownloadTranscript(ctx context.Context, c *transport.Caller, sessionID string) (*transport.Download, error) {
	if err := types.ValidateIDPresent(sessionID, "sessionId"); err != nil {
		return nil, err
	}
	var d transport.Download
	if err := c.Do(ctx, transport.Request{Path: "/download_transcript/" + sessionID}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
