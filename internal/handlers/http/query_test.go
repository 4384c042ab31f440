package http_test

import (
	"net/url"
	"testing"

	handlers "github.com/falconsystemsai/UOA/internal/handlers/http"
)

func TestParseActivityQueryAliases(t *testing.T) {
	values := url.Values{
		"tickers":           {"AAPL,TSLA"},
		"sentiment":         {"bullish"},
		"min_premium":       {"$50,000"},
		"sweepOnly":         {"TRUE"},
		"volumeGtOi":        {"true"},
		"aggressiveBuyOnly": {"true"},
		"page_number":       {"3"},
		"limit":             {"25"},
		"date_from":         {"2024-03-01"},
	}

	q := handlers.ParseActivityQuery(values)
	if q.Tickers != "AAPL,TSLA" {
		t.Errorf("tickers: got %q", q.Tickers)
	}
	if q.MinPremium == nil || q.MinPremium.NumericValue != 50000 {
		t.Errorf("min_premium: got %+v", q.MinPremium)
	}
	if !q.SweepOnly {
		t.Error("sweepOnly alias with TRUE should enable sweep_only")
	}
	if !q.VolumeGtOI {
		t.Error("volumeGtOi alias should enable volume_gt_oi")
	}
	if !q.AggressiveBuyOnly || q.AggressiveSellOnly {
		t.Error("aggression flags parsed incorrectly")
	}
	if q.Page != 3 {
		t.Errorf("page_number alias: got %d", q.Page)
	}
	if q.PageSize != 25 {
		t.Errorf("limit alias: got %d", q.PageSize)
	}
	if q.DateFrom != "2024-03-01" || q.DateTo != "" {
		t.Errorf("dates: got %q / %q", q.DateFrom, q.DateTo)
	}
}

func TestParseActivityQueryBooleanStrictness(t *testing.T) {
	for _, v := range []string{"1", "yes", "on", "truthy"} {
		q := handlers.ParseActivityQuery(url.Values{"volume_gt_oi": {v}})
		if q.VolumeGtOI {
			t.Errorf("boolean param accepted %q; only \"true\" is valid", v)
		}
	}
	q := handlers.ParseActivityQuery(url.Values{"volume_gt_oi": {"tRuE"}})
	if !q.VolumeGtOI {
		t.Error("boolean params are case-insensitive on \"true\"")
	}
}

func TestParseActivityQueryCanonicalKeyWinsOverAlias(t *testing.T) {
	values := url.Values{
		"min_premium":           {"1000"},
		"min_total_trade_value": {"2000"},
	}
	q := handlers.ParseActivityQuery(values)
	if q.MinPremium == nil || q.MinPremium.NumericValue != 1000 {
		t.Errorf("expected canonical min_premium to win, got %+v", q.MinPremium)
	}
}

func TestParseActivityQueryInvalidNumbers(t *testing.T) {
	q := handlers.ParseActivityQuery(url.Values{
		"min_premium": {"abc"},
		"page":        {"-2"},
		"page_size":   {"zero"},
	})
	if q.MinPremium != nil {
		t.Errorf("expected nil min_premium for noise, got %+v", q.MinPremium)
	}
	if q.Page != 0 || q.PageSize != 0 {
		t.Errorf("expected unset paging, got page=%d page_size=%d", q.Page, q.PageSize)
	}
}
