// Package upstream implements the HTTP client for the market-data provider.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/repository"
)

// Client fetches unusual-options-activity pages from the provider. One
// attempt per call; retries and timeouts beyond http.Client.Timeout are the
// caller's concern.
type Client struct {
	baseURL       string
	token         string
	tokenInHeader bool
	http          *http.Client
}

var _ repository.ActivitySource = (*Client)(nil)

func NewClient(baseURL, token string, tokenInHeader bool, timeout time.Duration) *Client {
	return &Client{
		baseURL:       baseURL,
		token:         token,
		tokenInHeader: tokenInHeader,
		http:          &http.Client{Timeout: timeout},
	}
}

// RequestURL builds the provider URL for a query. Absent or falsy parameters
// are omitted rather than sent empty, and url.Values.Encode keeps the key
// order stable, so equal queries always produce equal URLs.
func (c *Client) RequestURL(q model.ActivityQuery) string {
	params := url.Values{}
	if !c.tokenInHeader && c.token != "" {
		params.Set("token", c.token)
	}
	if q.Tickers != "" {
		params.Set("tickers", q.Tickers)
	}
	if q.Sentiment != "" {
		params.Set("sentiment", q.Sentiment)
	}
	if q.MinPremium != nil {
		params.Set("min_total_trade_value", q.MinPremium.TextValue)
	}
	if q.SweepOnly {
		params.Set("sweep_only", "true")
	}
	if q.DateFrom != "" {
		params.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		params.Set("date_to", q.DateTo)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pagesize", strconv.Itoa(q.PageSize))
	}

	if encoded := params.Encode(); encoded != "" {
		return c.baseURL + "?" + encoded
	}
	return c.baseURL
}

// Fetch performs one GET against a pre-built URL. The result always carries a
// decoded body: transport failures and non-JSON responses degrade to an error
// object so the orchestrator has a uniform shape to extract messages from.
func (c *Client) Fetch(ctx context.Context, requestURL string) *model.UpstreamResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return transportFailure(fmt.Sprintf("building upstream request: %v", err))
	}

	// A stale transport-level cache would defeat the TTL semantics of our
	// own cache, so every miss fetches fresh.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")
	if c.tokenInHeader && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportFailure(fmt.Sprintf("upstream request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(fmt.Sprintf("reading upstream response: %v", err))
	}

	result := &model.UpstreamResult{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		result.DecodeFailed = true
		result.Decoded = map[string]interface{}{
			"error": "upstream returned a non-JSON response",
		}
		return result
	}
	result.Decoded = decoded
	return result
}

func transportFailure(msg string) *model.UpstreamResult {
	return &model.UpstreamResult{
		Status:     http.StatusBadGateway,
		StatusText: http.StatusText(http.StatusBadGateway),
		Decoded:    map[string]interface{}{"error": msg},
	}
}
