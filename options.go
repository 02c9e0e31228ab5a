package vidsage

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
//
// Options run before the transport chokepoint is assembled, so anything they
// set (notifier, download directory, HTTP transport wrappers) is picked up
// by every request. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// This is a coarse safety net bounding the total time of a single HTTP
// request (connection, TLS handshake, redirects, reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and bodies, and the session cookie rides in both.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithNotifier installs the sink for transient user-facing messages. Pass
// NopNotifier to keep the transport purely error-propagating and handle all
// user messaging at the call sites.
func WithNotifier(n Notifier) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("notifier must not be nil")
		}
		c.notifier = n
		return nil
	}
}

// WithDownloadDir sets the directory transcript downloads are saved into.
// Defaults to the process working directory.
func WithDownloadDir(dir string) Option {
	return func(c *Client) error {
		if dir == "" {
			return fmt.Errorf("download dir must not be empty")
		}
		c.downloadDir = dir
		return nil
	}
}
