package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/repository"
	"github.com/falconsystemsai/UOA/internal/domain/service"
)

// Defaults passed through in the success envelope when the caller did not
// page explicitly; the provider applies the same defaults server-side.
const (
	defaultPage     = 1
	defaultPageSize = 50
)

// Orchestrator owns the response lifecycle of one activity request: cache
// lookup, upstream fetch on miss, normalization and filtering, envelope
// assembly, and the detached cache write. All errors are converted to failure
// envelopes at this boundary; nothing propagates past it.
type Orchestrator struct {
	log        *slog.Logger
	cache      repository.ResponseCache
	source     repository.ActivitySource
	publisher  repository.ActivityPublisher // optional, may be nil
	normalizer *service.Normalizer
	ttl        time.Duration
	hasToken   bool
}

func NewOrchestrator(
	log *slog.Logger,
	cache repository.ResponseCache,
	source repository.ActivitySource,
	publisher repository.ActivityPublisher,
	normalizer *service.Normalizer,
	ttl time.Duration,
	hasToken bool,
) *Orchestrator {
	return &Orchestrator{
		log:        log,
		cache:      cache,
		source:     source,
		publisher:  publisher,
		normalizer: normalizer,
		ttl:        ttl,
		hasToken:   hasToken,
	}
}

// CacheKey derives the cache key for a query: the upstream request URL with
// the three local-only filter flags appended as explicit booleans. The flags
// never reach the provider but change the filtered output, so two requests
// differing only in them must never collide.
func (o *Orchestrator) CacheKey(q model.ActivityQuery) string {
	base := o.source.RequestURL(q)
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%svolume_gt_oi=%t&aggressive_buy_only=%t&aggressive_sell_only=%t",
		base, sep, q.VolumeGtOI, q.AggressiveBuyOnly, q.AggressiveSellOnly)
}

// Handle serves one request end to end and always returns a response. Cache
// hits are returned verbatim; misses fetch upstream exactly once. Only
// success envelopes are written back, so transient upstream failures self-heal
// on the next request.
func (o *Orchestrator) Handle(ctx context.Context, q model.ActivityQuery) *model.CachedResponse {
	if !o.hasToken {
		return o.failureResponse(http.StatusInternalServerError, http.StatusInternalServerError,
			"upstream API token is not configured", map[string]interface{}{})
	}

	key := o.CacheKey(q)
	if cached, err := o.cache.Get(ctx, key); err != nil {
		o.log.Warn("cache lookup failed", "error", err)
	} else if cached != nil {
		return cached
	}

	result := o.source.Fetch(ctx, o.source.RequestURL(q))
	if !result.OK() {
		// A 2xx status with an undecodable body is still a failure; we
		// respond 502 but preserve what the provider actually said.
		status := result.Status
		if result.DecodeFailed && result.Status < 400 {
			status = http.StatusBadGateway
		}
		return o.failureResponse(status, result.Status,
			extractErrorMessage(result.Decoded, result.StatusText), result.Decoded)
	}

	records := o.normalizer.Normalize(result.Decoded)
	filtered := service.ApplyFilters(records, q)

	envelope := model.SuccessEnvelope{
		OK:           true,
		SourceStatus: result.Status,
		Page:         orDefault(q.Page, defaultPage),
		PageSize:     orDefault(q.PageSize, defaultPageSize),
		Count:        len(filtered),
		Results:      filtered,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return o.failureResponse(http.StatusInternalServerError, http.StatusInternalServerError,
			"failed to serialize response", map[string]interface{}{})
	}

	resp := &model.CachedResponse{
		Status: http.StatusOK,
		Header: map[string]string{
			"Content-Type":  "application/json",
			"Cache-Control": fmt.Sprintf("public, max-age=%d", int(o.ttl.Seconds())),
		},
		Body: body,
	}

	// Best-effort work happens after the response is ready: the caller is
	// never blocked on the cache or Kafka, and a lost write just means the
	// next request fetches again.
	o.storeDetached(ctx, key, resp)
	o.publishDetached(ctx, filtered)

	return resp
}

func (o *Orchestrator) storeDetached(ctx context.Context, key string, resp *model.CachedResponse) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	go func() {
		defer cancel()
		if err := o.cache.Put(writeCtx, key, resp, o.ttl); err != nil {
			o.log.Warn("cache write failed", "error", err)
		}
	}()
}

func (o *Orchestrator) publishDetached(ctx context.Context, records []model.ActivityRecord) {
	if o.publisher == nil || len(records) == 0 {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	go func() {
		defer cancel()
		if err := o.publisher.PublishBatch(pubCtx, records); err != nil {
			o.log.Warn("activity publish failed", "error", err)
		}
	}()
}

func (o *Orchestrator) failureResponse(status, sourceStatus int, msg string, details interface{}) *model.CachedResponse {
	envelope := model.FailureEnvelope{
		OK:           false,
		SourceStatus: sourceStatus,
		Error:        msg,
		ErrorDetails: details,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		body = []byte(`{"ok":false,"source_status":500,"error":"internal error","error_details":{}}`)
	}
	return &model.CachedResponse{
		Status: status,
		Header: map[string]string{
			"Content-Type":  "application/json",
			"Cache-Control": "no-store",
		},
		Body: body,
	}
}

// extractErrorMessage pulls the most specific message out of an upstream
// error payload: an `error` string, then `message`, then the first element of
// an `errors` array (or its `.message`), falling back to the HTTP status text.
func extractErrorMessage(decoded interface{}, statusText string) string {
	if m, ok := decoded.(map[string]interface{}); ok {
		if s, ok := m["error"].(string); ok && s != "" {
			return s
		}
		if s, ok := m["message"].(string); ok && s != "" {
			return s
		}
		if list, ok := m["errors"].([]interface{}); ok && len(list) > 0 {
			switch first := list[0].(type) {
			case string:
				if first != "" {
					return first
				}
			case map[string]interface{}:
				if s, ok := first["message"].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	if statusText != "" {
		return statusText
	}
	return "upstream request failed"
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
