package vidsage

import (
	"context"

	"github.com/vidsage/vidsage-go/internal/shardqueue"
)

// executor abstracts the internal async job runner used by QASession.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}
