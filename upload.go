package vidsage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vidsage/vidsage-go/internal/transport"
)

// SourceType discriminates the two mutually exclusive video sources.
type SourceType string

const (
	// SourceUpload is a locally supplied video file.
	SourceUpload SourceType = "upload"
	// SourceYouTube is a remote video identified by URL.
	SourceYouTube SourceType = "youtube"
)

// UploadForm models the source-selection form: either a binary file (picker
// or drag-and-drop, both land in the same slot, last write wins) or a
// YouTube URL. Only the active mode's input makes it into the payload, so a
// stale file never leaks into a URL submission.
type UploadForm struct {
	mu         sync.Mutex
	mode       SourceType
	fileName   string
	fileData   []byte
	youtubeURL string
	title      string
	submitting bool
}

// NewUploadForm starts in upload mode, matching the web UI's default tab.
func NewUploadForm() *UploadForm {
	return &UploadForm{mode: SourceUpload}
}

// SelectSource switches the active tab.
func (f *UploadForm) SelectSource(mode SourceType) error {
	if mode != SourceUpload && mode != SourceYouTube {
		return fmt.Errorf("unknown source type %q", mode)
	}
	f.mu.Lock()
	f.mode = mode
	f.mu.Unlock()
	return nil
}

// Mode returns the active source tab.
func (f *UploadForm) Mode() SourceType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// AttachFile fills the single file slot. The picker and the drop target
// both call this; whichever ran last wins.
func (f *UploadForm) AttachFile(name string, r io.Reader) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("file name must not be empty")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.fileName = name
	f.fileData = data
	f.mu.Unlock()
	return nil
}

// FileName reports the currently attached file, empty when none.
func (f *UploadForm) FileName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fileName
}

// SetYouTubeURL fills the remote-video field.
func (f *UploadForm) SetYouTubeURL(url string) {
	f.mu.Lock()
	f.youtubeURL = url
	f.mu.Unlock()
}

// SetTitle sets an optional display title for local uploads; the server
// falls back to the filename.
func (f *UploadForm) SetTitle(title string) {
	f.mu.Lock()
	f.title = title
	f.mu.Unlock()
}

// CanSubmit reports whether the active mode has its required input and no
// submission is in flight.
func (f *UploadForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	switch f.mode {
	case SourceUpload:
		return len(f.fileData) > 0
	case SourceYouTube:
		return strings.TrimSpace(f.youtubeURL) != ""
	default:
		return false
	}
}

// BuildPayload encodes the active source as the multipart body /process
// expects: a source_type discriminator plus the video file or youtube_url
// field. Returns ErrNoSource when the active mode has no input.
func (f *UploadForm) BuildPayload() (*FormPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buildPayloadLocked()
}

func (f *UploadForm) buildPayloadLocked() (*FormPayload, error) {
	var b transport.FormBuilder
	switch f.mode {
	case SourceUpload:
		if len(f.fileData) == 0 {
			return nil, ErrNoSource
		}
		b.File("video", f.fileName, bytes.NewReader(f.fileData))
		b.Field("source_type", string(SourceUpload))
		if f.title != "" {
			b.Field("title", f.title)
		}
	case SourceYouTube:
		if strings.TrimSpace(f.youtubeURL) == "" {
			return nil, ErrNoSource
		}
		b.Field("youtube_url", f.youtubeURL)
		b.Field("source_type", string(SourceYouTube))
	default:
		return nil, fmt.Errorf("unknown source type %q", f.mode)
	}
	return b.Build()
}

// Submit builds the payload and hands it to /process. A second Submit while
// one is in flight returns ErrBusy.
func (f *UploadForm) Submit(ctx context.Context, c *Client) (*ProcessResponse, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	payload, err := f.buildPayloadLocked()
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	return c.ProcessVideo(ctx, payload)
}
