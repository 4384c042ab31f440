package model

// NumericFilter is a sanitized numeric query input. NumericValue is the parsed
// number; TextValue keeps the cleaned digits-and-signs string so it can be
// passed through to the upstream request unchanged. A nil *NumericFilter means
// the input was absent or unparseable; that absence is the only error signal.
type NumericFilter struct {
	NumericValue float64
	TextValue    string
}

// ActivityQuery is the validated query-parameter bag for one inbound request.
// Zero values mean "not supplied": absent parameters are omitted from the
// upstream request rather than sent empty.
type ActivityQuery struct {
	Tickers    string
	Sentiment  string
	MinPremium *NumericFilter
	DateFrom   string
	DateTo     string
	Page       int
	PageSize   int

	// Sent upstream as a provider-side filter.
	SweepOnly bool

	// Local-only filters: applied after normalization, never sent upstream.
	// They still vary the cache key.
	VolumeGtOI         bool
	AggressiveBuyOnly  bool
	AggressiveSellOnly bool
}
