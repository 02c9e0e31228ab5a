package vidsage

import "github.com/vidsage/vidsage-go/internal/transport"

// Notifier is the sink for transient user-facing messages, the SDK's
// toast channel. The transport reports each request failure here
// exactly once; session and view components add their own successes.
type Notifier = transport.Notifier

// LogNotifier writes notifications through zerolog. It is the default.
type LogNotifier = transport.LogNotifier

// NopNotifier discards all notifications; install it via WithNotifier to
// move user messaging entirely to the call sites.
type NopNotifier = transport.Nop
