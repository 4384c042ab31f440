package service_test

import (
	"reflect"
	"testing"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/service"
)

func sampleRecords() []model.ActivityRecord {
	return []model.ActivityRecord{
		{ID: "1", Premium: 75000, Quantity: 500, OpenInterest: 100, AggressiveBuy: true},
		{ID: "2", Premium: 30000, Quantity: 50, OpenInterest: 200, AggressiveSell: true},
		{ID: "3", Premium: 120000, Quantity: 300, OpenInterest: 300},
	}
}

func TestPremiumFilter(t *testing.T) {
	q := model.ActivityQuery{MinPremium: &model.NumericFilter{NumericValue: 50000, TextValue: "50000"}}
	got := service.ApplyFilters(sampleRecords(), q)
	if len(got) != 2 {
		t.Fatalf("expected 2 records above 50000, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("expected records 1 and 3 in order, got %s and %s", got[0].ID, got[1].ID)
	}
}

func TestPremiumFilterIdempotent(t *testing.T) {
	q := model.ActivityQuery{MinPremium: &model.NumericFilter{NumericValue: 50000, TextValue: "50000"}}
	once := service.ApplyFilters(sampleRecords(), q)
	twice := service.ApplyFilters(once, q)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("premium filter is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestVolumeGtOIFilter(t *testing.T) {
	q := model.ActivityQuery{VolumeGtOI: true}
	got := service.ApplyFilters(sampleRecords(), q)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only record 1 (500 > 100), got %+v", got)
	}
}

func TestAggressionFilterCombinations(t *testing.T) {
	records := sampleRecords()

	buyOnly := service.ApplyFilters(records, model.ActivityQuery{AggressiveBuyOnly: true})
	if len(buyOnly) != 1 || buyOnly[0].ID != "1" {
		t.Errorf("buy-only: expected record 1, got %+v", buyOnly)
	}

	sellOnly := service.ApplyFilters(records, model.ActivityQuery{AggressiveSellOnly: true})
	if len(sellOnly) != 1 || sellOnly[0].ID != "2" {
		t.Errorf("sell-only: expected record 2, got %+v", sellOnly)
	}

	both := service.ApplyFilters(records, model.ActivityQuery{AggressiveBuyOnly: true, AggressiveSellOnly: true})
	if len(both) != 2 {
		t.Errorf("both: expected records 1 and 2, got %+v", both)
	}

	neither := service.ApplyFilters(records, model.ActivityQuery{})
	if len(neither) != 3 {
		t.Errorf("neither: expected all records, got %d", len(neither))
	}
}

func TestFiltersComposeInOrder(t *testing.T) {
	q := model.ActivityQuery{
		MinPremium:        &model.NumericFilter{NumericValue: 50000, TextValue: "50000"},
		VolumeGtOI:        true,
		AggressiveBuyOnly: true,
	}
	got := service.ApplyFilters(sampleRecords(), q)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only record 1 to survive the full pipeline, got %+v", got)
	}
}
