package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys. Implementations must be
// safe for concurrent use; the pipeline shares one Cache across goroutines.
type Cache interface {
	// Get returns the payload for key. A miss is (nil, false, nil); errors are
	// reserved for backend failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTL values for the cached pipeline products.
const (
	TTLAnalysis      = 24 * time.Hour
	TTLDecomposition = 24 * time.Hour
	TTLLayout        = 7 * 24 * time.Hour
	TTLArtifact      = 7 * 24 * time.Hour
)
