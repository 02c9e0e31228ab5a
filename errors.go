package vidsage

import (
	"errors"

	"github.com/vidsage/vidsage-go/internal/shardqueue"
	"github.com/vidsage/vidsage-go/internal/transport"
)

// RequestError is the single error kind the transport collapses every
// network, status and decode failure into. Message is display-safe.
type RequestError = transport.RequestError

// AsRequestError unwraps err into a *RequestError when the failure came
// from the transport chokepoint.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = shardqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrEmptyQuestion rejects blank Q&A submissions before any entry is
// appended or network call issued.
var ErrEmptyQuestion = errors.New("question is empty")

// ErrBusy rejects an operation while a previous one from the same control
// is still in flight.
var ErrBusy = errors.New("operation already in flight")

// ErrNoSource is returned by the upload form when the active source mode
// has no input: no file in upload mode, no URL in YouTube mode.
var ErrNoSource = errors.New("no video source selected")
