// Package service implements the normalization-and-filtering pipeline: the
// pure domain logic between a raw upstream payload and a filtered canonical
// record set. Nothing in this package performs I/O or returns errors; absent
// and malformed fields silently degrade to defaults so one broken record can
// never fail a whole batch.
package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/falconsystemsai/UOA/internal/domain/model"
)

// Candidate source-field names per canonical field, tried in order; the first
// present, non-empty (or finite) value wins. Kept as data rather than
// conditionals so the mapping across provider schema variants stays auditable.
var (
	recordPaths = [][]string{
		{"data"}, {"results"}, {"records"}, {"items"}, {"rows"}, {"trades"},
		{"data", "items"}, {"data", "records"},
	}

	idFields         = []string{"id", "uid", "uuid", "trade_id", "record_id"}
	tickerFields     = []string{"ticker", "symbol", "underlying_symbol", "underlying_ticker"}
	typeFields       = []string{"type", "option_type", "put_call", "contract_type", "kind"}
	sideFields       = []string{"side", "sentiment", "direction"}
	expiryFields     = []string{"expiry", "expiration", "expiration_date", "expiry_date", "exp_date"}
	dateFields       = []string{"date", "trade_date", "executed_date"}
	timeFields       = []string{"time", "trade_time", "executed_time"}
	epochFields      = []string{"timestamp", "epoch", "executed_at", "created_at", "time"}
	premiumFields    = []string{"premium", "total_trade_value", "total_premium", "trade_value", "notional_value", "cost_basis"}
	priceFields      = []string{"trade_price", "price", "fill_price", "execution_price"}
	quantityFields   = []string{"quantity", "size", "volume", "contracts", "qty"}
	strikeFields     = []string{"strike", "strike_price"}
	ivFields         = []string{"iv", "implied_volatility", "implied_vol"}
	underlyingFields = []string{"underlying_price", "stock_price", "spot_price", "spot"}
	oiFields         = []string{"open_interest", "oi", "openInterest"}
	sweepFields      = []string{"sweep", "is_sweep", "has_sweep", "sweep_flag"}
	posFields        = []string{"pos_in_spread", "spread_position", "price_position", "fill_position", "pos"}
	indicatorFields  = []string{"aggressor_indicator", "aggressor", "aggressor_side", "execution_side"}
	askHintFields    = []string{"at_ask", "at_or_above_ask", "above_ask", "is_at_ask"}
	bidHintFields    = []string{"at_bid", "at_or_below_bid", "below_bid", "is_at_bid"}
	relationFields   = []string{"price_relation", "price_vs_quote", "relation", "price_action"}
)

// Normalizer maps arbitrary upstream payload shapes into canonical activity
// records, order-preserving relative to the input.
type Normalizer struct {
	policy AggressionPolicy
}

func NewNormalizer(policy AggressionPolicy) *Normalizer {
	return &Normalizer{policy: policy}
}

// Normalize converts a decoded upstream JSON body into canonical records.
// The record array may sit at the top level or nested under a known key path;
// any other shape yields an empty slice.
func (n *Normalizer) Normalize(payload interface{}) []model.ActivityRecord {
	raws := locateRecords(payload)
	records := make([]model.ActivityRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, n.normalizeRecord(raw))
	}
	return records
}

func locateRecords(payload interface{}) []map[string]interface{} {
	if list, ok := payload.([]interface{}); ok {
		return onlyMaps(list)
	}

	root, ok := payload.(map[string]interface{})
	if !ok {
		return nil
	}
	for _, path := range recordPaths {
		node := interface{}(root)
		for _, key := range path {
			m, ok := node.(map[string]interface{})
			if !ok {
				node = nil
				break
			}
			node = m[key]
		}
		if list, ok := node.([]interface{}); ok {
			return onlyMaps(list)
		}
	}
	return nil
}

func onlyMaps(list []interface{}) []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			maps = append(maps, m)
		}
	}
	return maps
}

func (n *Normalizer) normalizeRecord(raw map[string]interface{}) model.ActivityRecord {
	rec := model.ActivityRecord{
		Ticker:          firstString(raw, tickerFields),
		Expiry:          firstString(raw, expiryFields),
		Premium:         firstNumberOrZero(raw, premiumFields),
		TradePrice:      firstNumberOrZero(raw, priceFields),
		Quantity:        firstNumberOrZero(raw, quantityFields),
		Strike:          firstNumberOrZero(raw, strikeFields),
		IV:              firstNumberOrZero(raw, ivFields),
		UnderlyingPrice: firstNumberOrZero(raw, underlyingFields),
		OpenInterest:    firstNumberOrZero(raw, oiFields),
		Sweep:           firstBool(raw, sweepFields),
	}

	rec.Type = normalizeOptionType(firstString(raw, typeFields))
	rec.Side = normalizeSide(firstString(raw, sideFields))
	rec.Time = displayTime(raw)
	rec.ID = recordID(raw, rec.Ticker)

	n.inferAggression(raw, &rec)

	return rec
}

// inferAggression layers the available signals, strongest first: explicit
// boolean hints, the canonicalized aggressor indicator, free-text phrasing,
// and finally the spread-position thresholds. Providers rarely expose more
// than one of these, so each layer only widens the classification.
func (n *Normalizer) inferAggression(raw map[string]interface{}, rec *model.ActivityRecord) {
	if pos, ok := firstNumber(raw, posFields); ok {
		rec.PosInSpread = &pos
	}

	indicator := normalizeIndicator(firstString(raw, indicatorFields))
	canonical := ""
	if indicator != "" {
		if mapped, ok := n.policy.IndicatorSynonyms[indicator]; ok {
			canonical = mapped
			rec.AggressorIndicator = &mapped
		} else {
			rec.AggressorIndicator = &indicator
		}
	}

	relation := strings.ToLower(firstString(raw, relationFields))

	rec.AtOrAboveAsk = anyBoolTrue(raw, askHintFields) ||
		canonical == IndicatorAtAsk ||
		containsAny(relation, n.policy.BuyPhrases)
	rec.AtOrBelowBid = anyBoolTrue(raw, bidHintFields) ||
		canonical == IndicatorAtBid ||
		containsAny(relation, n.policy.SellPhrases)

	rec.AggressiveBuy = rec.AtOrAboveAsk ||
		(rec.PosInSpread != nil && *rec.PosInSpread >= n.policy.AskThreshold)
	rec.AggressiveSell = rec.AtOrBelowBid ||
		(rec.PosInSpread != nil && *rec.PosInSpread <= n.policy.BidThreshold)
}

// normalizeIndicator collapses runs of non-alphanumerics to single
// underscores and upper-cases, so "hit the bid!" and "Hit-The-Bid" normalize
// identically before the synonym lookup.
func normalizeIndicator(raw string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

func containsAny(text string, phrases []string) bool {
	if text == "" {
		return false
	}
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func normalizeOptionType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case t == "c" || strings.Contains(t, "call"):
		return "call"
	case t == "p" || strings.Contains(t, "put"):
		return "put"
	default:
		return t
	}
}

func normalizeSide(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "bull") || s == "buy":
		return "bullish"
	case strings.Contains(s, "bear") || s == "sell":
		return "bearish"
	case strings.Contains(s, "neut"):
		return "neutral"
	default:
		return s
	}
}

// displayTime builds the human-readable time column: "{date} {time}" when
// both are present, a single field when only one is, else an epoch value
// rendered as UTC. Epochs at or above 1e12 are taken as milliseconds.
func displayTime(raw map[string]interface{}) string {
	date := firstString(raw, dateFields)
	clock := firstString(raw, timeFields)
	switch {
	case date != "" && clock != "":
		return date + " " + clock
	case date != "":
		return date
	case clock != "":
		return clock
	}

	epoch, ok := firstNumber(raw, epochFields)
	if !ok || epoch <= 0 {
		return ""
	}
	return formatEpoch(epoch)
}

func formatEpoch(epoch float64) string {
	var t time.Time
	if epoch >= 1e12 {
		t = time.UnixMilli(int64(epoch))
	} else {
		t = time.Unix(int64(epoch), 0)
	}
	return t.UTC().Format("2006-01-02 15:04:05") + "Z"
}

// recordID prefers an upstream identity field, falls back to
// ticker+timestamp, and synthesizes a UUID when neither exists so every
// record stays addressable within its batch.
func recordID(raw map[string]interface{}, ticker string) string {
	if id := firstString(raw, idFields); id != "" {
		return id
	}
	if n, ok := firstNumber(raw, idFields); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	if ticker != "" {
		if epoch, ok := firstNumber(raw, epochFields); ok && epoch > 0 {
			return fmt.Sprintf("%s-%d", ticker, int64(epoch))
		}
	}
	return uuid.New().String()
}

// --- candidate-list accessors ---

func firstString(raw map[string]interface{}, fields []string) string {
	for _, f := range fields {
		if s, ok := raw[f].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstNumber(raw map[string]interface{}, fields []string) (float64, bool) {
	for _, f := range fields {
		v, present := raw[f]
		if !present {
			continue
		}
		if n, ok := coerceNumber(v); ok {
			return n, true
		}
	}
	return 0, false
}

func firstNumberOrZero(raw map[string]interface{}, fields []string) float64 {
	n, _ := firstNumber(raw, fields)
	return n
}

func coerceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// firstBool takes the first candidate present in the record, coerced; later
// candidates cannot override it.
func firstBool(raw map[string]interface{}, fields []string) bool {
	for _, f := range fields {
		if v, present := raw[f]; present && v != nil {
			return coerceBool(v)
		}
	}
	return false
}

// anyBoolTrue is the widening variant used for the explicit ask/bid hints,
// where any true spelling counts.
func anyBoolTrue(raw map[string]interface{}, fields []string) bool {
	for _, f := range fields {
		if v, present := raw[f]; present && coerceBool(v) {
			return true
		}
	}
	return false
}

// coerceBool accepts the boolean spellings seen across provider variants:
// true/false, 1/0, and the yes/no/y/n/t/f strings case-insensitively.
// Anything else is false.
func coerceBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "y", "t":
			return true
		}
	}
	return false
}
