package service

// Canonical aggressor indicators.
const (
	IndicatorAtAsk = "AT_ASK"
	IndicatorAtBid = "AT_BID"
)

// AggressionPolicy holds the tunable heuristics used to classify a trade as
// an aggressive buy or sell. Providers expose the same signal as explicit
// flags, free-text execution hints, or a spread position, and the exact
// thresholds and phrase lists are tuned values rather than protocol
// constants, so they live in configuration instead of the inference code.
type AggressionPolicy struct {
	// A spread position at or above AskThreshold counts as an aggressive
	// buy; at or below BidThreshold, an aggressive sell.
	AskThreshold float64
	BidThreshold float64

	// Substrings matched against free-text price-relation fields,
	// lower-case.
	BuyPhrases  []string
	SellPhrases []string

	// IndicatorSynonyms maps normalized aggressor-indicator tokens
	// (non-alphanumerics collapsed to '_', upper-cased) to a canonical
	// indicator.
	IndicatorSynonyms map[string]string
}

// DefaultAggressionPolicy returns the policy observed across the known
// provider schema variants.
func DefaultAggressionPolicy() AggressionPolicy {
	return AggressionPolicy{
		AskThreshold: 0.75,
		BidThreshold: 0.25,
		BuyPhrases: []string{
			"at ask", "above ask", "ask side", "over ask", "take ask",
		},
		SellPhrases: []string{
			"at bid", "below bid", "bid side", "under bid", "hit bid",
		},
		IndicatorSynonyms: map[string]string{
			"AT_ASK":    IndicatorAtAsk,
			"ABOVE_ASK": IndicatorAtAsk,
			"LIFT":      IndicatorAtAsk,
			"LIFT_ASK":  IndicatorAtAsk,
			"TAKE":      IndicatorAtAsk,
			"TAKE_ASK":  IndicatorAtAsk,
			"BUYER":     IndicatorAtAsk,
			"BUY":       IndicatorAtAsk,
			"BOUGHT":    IndicatorAtAsk,
			"AT_BID":    IndicatorAtBid,
			"BELOW_BID": IndicatorAtBid,
			"HIT":       IndicatorAtBid,
			"HIT_BID":   IndicatorAtBid,
			"SELLER":    IndicatorAtBid,
			"SELL":      IndicatorAtBid,
			"SOLD":      IndicatorAtBid,
		},
	}
}
