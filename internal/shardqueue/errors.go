package shardqueue

import (
	"errors"
	"fmt"
)

// ErrExecutorClosed is returned by Submit after Stop has been called.
var ErrExecutorClosed = errors.New("shardqueue: executor closed")

// ErrQueueFull is the sentinel wrapped by QueueFullError.
var ErrQueueFull = errors.New("shardqueue: queue full")

// QueueFullError reports which shard rejected a submission and how full it was.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("shardqueue: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Unwrap lets errors.Is(err, ErrQueueFull) match.
func (e *QueueFullError) Unwrap() error { return ErrQueueFull }
