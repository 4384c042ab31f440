package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/service"
)

// ParseActivityQuery maps the inbound query-parameter bag onto a validated
// ActivityQuery. Each parameter accepts the aliases the front end and older
// clients use; boolean parameters only recognize a case-insensitive "true".
func ParseActivityQuery(values url.Values) model.ActivityQuery {
	return model.ActivityQuery{
		Tickers:            firstParam(values, "tickers"),
		Sentiment:          firstParam(values, "sentiment"),
		MinPremium:         service.SanitizeNumeric(firstParam(values, "min_premium", "min_total_trade_value")),
		SweepOnly:          boolParam(values, "sweep_only", "sweepOnly"),
		VolumeGtOI:         boolParam(values, "volume_gt_oi", "volumeGtOi", "size_gt_oi"),
		AggressiveBuyOnly:  boolParam(values, "aggressive_buy_only", "aggressiveBuyOnly"),
		AggressiveSellOnly: boolParam(values, "aggressive_sell_only", "aggressiveSellOnly"),
		Page:               intParam(values, "page", "page_number"),
		PageSize:           intParam(values, "page_size", "pagesize", "pageSize", "limit"),
		DateFrom:           firstParam(values, "date_from"),
		DateTo:             firstParam(values, "date_to"),
	}
}

func firstParam(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(values.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func boolParam(values url.Values, keys ...string) bool {
	return strings.EqualFold(firstParam(values, keys...), "true")
}

func intParam(values url.Values, keys ...string) int {
	v, err := strconv.Atoi(firstParam(values, keys...))
	if err != nil || v < 1 {
		return 0
	}
	return v
}
