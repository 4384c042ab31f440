package model

// ActivityRecord is the canonical, stable-shaped representation of one unusual
// options activity trade. Upstream providers expose the same signals under
// inconsistent field names; normalization resolves them into this shape once,
// after which the record is immutable. Every field is always present in the
// serialized form with a defined default, so the front end never has to probe
// for missing keys.
type ActivityRecord struct {
	ID     string `json:"id"`
	Ticker string `json:"ticker"`
	Type   string `json:"type"`
	Side   string `json:"side"`
	Expiry string `json:"expiry"`
	Time   string `json:"time"`

	Sweep          bool `json:"sweep"`
	AtOrAboveAsk   bool `json:"at_or_above_ask"`
	AtOrBelowBid   bool `json:"at_or_below_bid"`
	AggressiveBuy  bool `json:"aggressive_buy"`
	AggressiveSell bool `json:"aggressive_sell"`

	Premium         float64 `json:"premium"`
	TradePrice      float64 `json:"trade_price"`
	Quantity        float64 `json:"quantity"`
	Strike          float64 `json:"strike"`
	IV              float64 `json:"iv"`
	UnderlyingPrice float64 `json:"underlying_price"`
	OpenInterest    float64 `json:"open_interest"`

	// PosInSpread locates the fill between bid (0.0) and ask (1.0).
	// Nil when no spread-position field was present upstream.
	PosInSpread *float64 `json:"pos_in_spread"`

	// AggressorIndicator is the canonical execution-side hint (AT_ASK, AT_BID,
	// or the normalized upstream text when it maps to no known synonym).
	AggressorIndicator *string `json:"aggressor_indicator"`
}

// SuccessEnvelope is the response body for a request that reached the upstream
// (or the cache) and produced a record set, possibly empty.
type SuccessEnvelope struct {
	OK           bool             `json:"ok"`
	SourceStatus int              `json:"source_status"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
	Count        int              `json:"count"`
	Results      []ActivityRecord `json:"results"`
}

// FailureEnvelope is the response body for configuration, transport, and
// upstream-reported errors. ErrorDetails preserves the raw upstream payload
// for diagnostics.
type FailureEnvelope struct {
	OK           bool        `json:"ok"`
	SourceStatus int         `json:"source_status"`
	Error        string      `json:"error"`
	ErrorDetails interface{} `json:"error_details"`
}
