package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/infrastructure/upstream"
)

func TestRequestURLOmitsAbsentParameters(t *testing.T) {
	client := upstream.NewClient("https://provider.test/v1/uoa", "secret", false, time.Second)

	got := client.RequestURL(model.ActivityQuery{Tickers: "AAPL"})
	if got != "https://provider.test/v1/uoa?tickers=AAPL&token=secret" {
		t.Errorf("unexpected URL: %s", got)
	}
	if strings.Contains(got, "sentiment") || strings.Contains(got, "page") {
		t.Errorf("absent parameters leaked into URL: %s", got)
	}
}

func TestRequestURLIsDeterministic(t *testing.T) {
	client := upstream.NewClient("https://provider.test/v1/uoa", "secret", false, time.Second)
	q := model.ActivityQuery{
		Tickers:    "AAPL,TSLA",
		Sentiment:  "bullish",
		MinPremium: &model.NumericFilter{NumericValue: 50000, TextValue: "50000"},
		SweepOnly:  true,
		DateFrom:   "2024-03-01",
		Page:       2,
		PageSize:   25,
	}
	first := client.RequestURL(q)
	second := client.RequestURL(q)
	if first != second {
		t.Errorf("URL building is not deterministic: %s vs %s", first, second)
	}
	for _, param := range []string{
		"min_total_trade_value=50000", "sweep_only=true", "page=2", "pagesize=25",
	} {
		if !strings.Contains(first, param) {
			t.Errorf("expected %s in %s", param, first)
		}
	}
}

func TestRequestURLHeaderAuthKeepsTokenOut(t *testing.T) {
	client := upstream.NewClient("https://provider.test/v1/uoa", "secret", true, time.Second)
	got := client.RequestURL(model.ActivityQuery{Tickers: "AAPL"})
	if strings.Contains(got, "secret") {
		t.Errorf("token leaked into URL under header auth: %s", got)
	}
}

func TestFetchSendsNoCacheAndAuthHeaders(t *testing.T) {
	var gotCacheControl, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer server.Close()

	client := upstream.NewClient(server.URL, "secret", true, time.Second)
	result := client.Fetch(context.Background(), server.URL)
	if !result.OK() {
		t.Fatalf("expected success, got status %d", result.Status)
	}
	if gotCacheControl != "no-cache" {
		t.Errorf("expected transport-cache bypass header, got %q", gotCacheControl)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
}

func TestFetchDegradesNonJSONToErrorObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := upstream.NewClient(server.URL, "", false, time.Second)
	result := client.Fetch(context.Background(), server.URL)
	if !result.DecodeFailed {
		t.Error("expected DecodeFailed for a non-JSON body")
	}
	if result.OK() {
		t.Error("a 200 with an undecodable body must not count as OK")
	}
	m, ok := result.Decoded.(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %T", result.Decoded)
	}
	if m["error"] != "upstream returned a non-JSON response" {
		t.Errorf("unexpected error message: %v", m["error"])
	}
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	client := upstream.NewClient(url, "", false, time.Second)
	result := client.Fetch(context.Background(), url)
	if result.OK() {
		t.Fatal("expected failure for unreachable upstream")
	}
	if result.Status != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", result.Status)
	}
	m, ok := result.Decoded.(map[string]interface{})
	if !ok || m["error"] == nil {
		t.Errorf("expected a descriptive error object, got %v", result.Decoded)
	}
}
