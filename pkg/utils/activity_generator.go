package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityGenerator produces raw provider-shaped records across the known
// upstream schema variants. Used by the mock upstream tool and for exercising
// the normalizer against realistic field-name drift.
type ActivityGenerator struct{}

// NewActivityGenerator creates a new activity generator
func NewActivityGenerator() *ActivityGenerator {
	return &ActivityGenerator{}
}

// GenerateRawRecords creates count raw records, cycling tickers and schema
// variants so consecutive records name the same signals differently.
func (g *ActivityGenerator) GenerateRawRecords(count int) []map[string]interface{} {
	tickers := []string{"AAPL", "TSLA", "NVDA", "SPY", "QQQ", "AMD", "MSFT", "META"}
	sentiments := []string{"bullish", "bearish", "neutral"}
	types := []string{"call", "put"}

	records := make([]map[string]interface{}, count)
	for i := 0; i < count; i++ {
		ticker := tickers[i%len(tickers)]
		premium := float64(25000 + i*7500)
		size := float64(100 + i*37)
		oi := float64(50 + i*11)
		now := time.Now()

		var rec map[string]interface{}
		switch i % 3 {
		case 0:
			rec = map[string]interface{}{
				"id":            uuid.New().String(),
				"ticker":        ticker,
				"type":          types[i%2],
				"sentiment":     sentiments[i%3],
				"premium":       premium,
				"size":          size,
				"open_interest": oi,
				"strike":        100.0 + float64(i%40)*2.5,
				"sweep":         i%2 == 0,
				"pos_in_spread": float64(i%100) / 100.0,
				"timestamp":     now.Unix(),
			}
		case 1:
			rec = map[string]interface{}{
				"symbol":            ticker,
				"put_call":          types[i%2],
				"direction":         sentiments[i%3],
				"total_trade_value": premium,
				"volume":            size,
				"oi":                oi,
				"strike_price":      100.0 + float64(i%40)*2.5,
				"is_sweep":          "yes",
				"price_relation":    "at ask",
				"date":              now.Format("2006-01-02"),
				"time":              now.Format("15:04:05"),
			}
		default:
			rec = map[string]interface{}{
				"underlying_symbol":   ticker,
				"option_type":         types[i%2],
				"side":                sentiments[i%3],
				"total_premium":       fmt.Sprintf("%.0f", premium),
				"qty":                 size,
				"openInterest":        oi,
				"aggressor_indicator": "hit bid",
				"executed_at":         now.UnixMilli(),
			}
		}
		records[i] = rec
	}

	return records
}
