package service

import (
	"math"

	"github.com/falconsystemsai/UOA/internal/domain/model"
)

// ApplyFilters runs the post-fetch filters the upstream API does not support,
// strictly in order: premium, volume-vs-open-interest, aggression. Each stage
// is a pure, order-preserving filter; applying the pipeline to its own output
// with the same query is a no-op.
func ApplyFilters(records []model.ActivityRecord, q model.ActivityQuery) []model.ActivityRecord {
	records = filterPremium(records, q.MinPremium)
	records = filterVolumeGtOI(records, q.VolumeGtOI)
	records = filterAggression(records, q.AggressiveBuyOnly, q.AggressiveSellOnly)
	return records
}

func filterPremium(records []model.ActivityRecord, min *model.NumericFilter) []model.ActivityRecord {
	if min == nil {
		return records
	}
	kept := make([]model.ActivityRecord, 0, len(records))
	for _, r := range records {
		if finite(r.Premium) && r.Premium >= min.NumericValue {
			kept = append(kept, r)
		}
	}
	return kept
}

func filterVolumeGtOI(records []model.ActivityRecord, enabled bool) []model.ActivityRecord {
	if !enabled {
		return records
	}
	kept := make([]model.ActivityRecord, 0, len(records))
	for _, r := range records {
		if finite(r.Quantity) && finite(r.OpenInterest) && r.Quantity > r.OpenInterest {
			kept = append(kept, r)
		}
	}
	return kept
}

func filterAggression(records []model.ActivityRecord, buyOnly, sellOnly bool) []model.ActivityRecord {
	if !buyOnly && !sellOnly {
		return records
	}
	kept := make([]model.ActivityRecord, 0, len(records))
	for _, r := range records {
		switch {
		case buyOnly && sellOnly:
			if r.AggressiveBuy || r.AggressiveSell {
				kept = append(kept, r)
			}
		case buyOnly:
			if r.AggressiveBuy {
				kept = append(kept, r)
			}
		default:
			if r.AggressiveSell {
				kept = append(kept, r)
			}
		}
	}
	return kept
}

func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
