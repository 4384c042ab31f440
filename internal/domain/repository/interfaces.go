// Package repository defines the ports used by the orchestration layer.
// Domain logic depends on these interfaces; infrastructure packages provide
// the concrete Redis and HTTP implementations.
package repository

import (
	"context"
	"time"

	"github.com/falconsystemsai/UOA/internal/domain/model"
)

// ResponseCache is the read-through cache port, keyed by the request's cache
// key string. Implementations must provide atomic get/put per key and
// time-based eviction; a miss is reported as (nil, nil), not an error.
type ResponseCache interface {
	// Get returns the cached response for key, or nil on a miss.
	Get(ctx context.Context, key string) (*model.CachedResponse, error)

	// Put stores resp under key for at most ttl. Duplicate writes of
	// equivalent data are tolerated; last write wins.
	Put(ctx context.Context, key string, resp *model.CachedResponse, ttl time.Duration) error
}

// ActivitySource is the upstream market-data provider port. RequestURL builds
// the deterministic provider URL for a query, omitting absent parameters.
// Fetch issues a single attempt against that URL, bypassing any transport
// cache, and never returns a nil result: transport and decode failures degrade
// to an error-shaped decoded body.
type ActivitySource interface {
	RequestURL(q model.ActivityQuery) string
	Fetch(ctx context.Context, url string) *model.UpstreamResult
}

// ActivityPublisher is the optional egress port for freshly normalized
// batches. Publishing is best-effort; callers ignore the error beyond logging.
type ActivityPublisher interface {
	PublishBatch(ctx context.Context, records []model.ActivityRecord) error
	Close() error
}
