package job

import (
	"fmt"
	"hash/fnv"
)

// ShardLabel hashes a session id to a stable small-cardinality label (0-31)
// suitable for metric labels.
func ShardLabel(sessionID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
