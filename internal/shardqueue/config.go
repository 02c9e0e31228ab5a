package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes a ShardExecutor. Zero values are replaced with defaults in
// NewShardExecutor, so the struct literal form stays convenient in tests.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int `envconfig:"SQ_SHARDS" default:"4"`

	// QueueSize bounds each shard's buffered channel.
	QueueSize int `envconfig:"SQ_QUEUE_SIZE" default:"128"`

	// EnqueueTimeout is how long Submit waits for queue space before
	// returning a QueueFullError.
	EnqueueTimeout time.Duration `envconfig:"SQ_ENQUEUE_TIMEOUT" default:"100ms"`

	// MaxAttempts caps retries for a recoverable job failure.
	MaxAttempts int `envconfig:"SQ_MAX_ATTEMPTS" default:"8"`

	// BaseBackoff is the initial retry interval.
	BaseBackoff time.Duration `envconfig:"SQ_BASE_BACKOFF" default:"100ms"`

	// MaxInterval caps the exponential backoff interval.
	MaxInterval time.Duration `envconfig:"SQ_MAX_INTERVAL" default:"20s"`

	// ErrorHandler, when set, receives every job error that exhausted its
	// retries (or was irrecoverable). Must not block.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig reads executor settings from SQ_* environment variables,
// falling back to the struct tag defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
