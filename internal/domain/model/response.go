package model

import "encoding/json"

// CachedResponse is the unit the read-through cache stores and serves: the
// fully serialized response body together with the status and headers it was
// first returned with, so a cache hit can be replayed verbatim.
type CachedResponse struct {
	Status int               `json:"status"`
	Header map[string]string `json:"header"`
	Body   json.RawMessage   `json:"body"`
}

// UpstreamResult is the outcome of a single provider fetch. Decoded is the
// parsed JSON body (any shape); on transport or decode failure it degrades to
// an error object with a descriptive message rather than being absent, and
// DecodeFailed records that the original body was not JSON.
type UpstreamResult struct {
	Status       int
	StatusText   string
	Decoded      interface{}
	DecodeFailed bool
}

// OK reports whether the fetch produced a usable record payload: a 2xx status
// whose body actually decoded. A 200 wrapped around an HTML error page is a
// decode failure, not an empty result.
func (r *UpstreamResult) OK() bool {
	return r.Status >= 200 && r.Status < 300 && !r.DecodeFailed
}
