package transport

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// downloadPathPrefix marks the one endpoint family whose response is a raw
// file instead of JSON.
const downloadPathPrefix = "/download_transcript/"

// defaultDownloadName is used when Content-Disposition is absent or
// unparseable.
const defaultDownloadName = "transcript.txt"

// Download reports where a binary response was saved.
type Download struct {
	Filename string // name derived from Content-Disposition
	Path     string // absolute or downloadDir-relative path written
}

func isDownloadPath(path string) bool {
	return strings.HasPrefix(path, downloadPathPrefix)
}

// consumeDownload saves the response body under the filename advertised by
// the server and, when out is a *Download, reports the saved location.
func (c *Caller) consumeDownload(req Request, resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fail(req, &RequestError{StatusCode: resp.StatusCode, Message: genericFailure})
	}

	name := downloadFilename(resp.Header.Get("Content-Disposition"))
	dest := filepath.Join(c.downloadDir, name)

	f, err := os.Create(dest)
	if err != nil {
		return c.fail(req, &RequestError{Message: err.Error()})
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return c.fail(req, &RequestError{Message: err.Error()})
	}

	if d, ok := out.(*Download); ok && d != nil {
		d.Filename = name
		d.Path = dest
	}
	return nil
}

// downloadFilename extracts the attachment filename from a
// Content-Disposition header value, falling back to defaultDownloadName.
// The name is reduced to its base component so a hostile header cannot
// escape the download directory.
func downloadFilename(disposition string) string {
	if disposition == "" {
		return defaultDownloadName
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return defaultDownloadName
	}
	name := filepath.Base(strings.Trim(params["filename"], `"'`))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return defaultDownloadName
	}
	return name
}
