package transport

import "github.com/rs/zerolog/log"

// Notifier receives transient user-facing messages, the SDK's toast
// channel. The transport reports every request failure here exactly once;
// stateful components report their own successes and validation failures.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the global zerolog logger. It is the
// default when the embedding application supplies nothing better.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Info().Str("notice", msg).Msg("notify") }
func (LogNotifier) Error(msg string)   { log.Warn().Str("notice", msg).Msg("notify") }

// Nop discards all notifications. Install it to keep the transport purely
// error-propagating and do all user messaging at the call sites.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
