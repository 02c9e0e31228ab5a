package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidsage/vidsage-go/internal/transport"
)

// newCaller wires a Caller against a test server with notifications muted.
func newCaller(t *testing.T, srv *httptest.Server) *transport.Caller {
	t.Helper()
	return transport.New(srv.URL, srv.Client(), transport.Nop{}, t.TempDir())
}

func jsonDecode(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
