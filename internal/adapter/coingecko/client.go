// Package coingecko fetches the SOL/USD spot rate from a CoinGecko-compatible API.
package coingecko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Client implements ports.PriceSource against the simple-price endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
}

// NewClient constructs a price client. The URL carries its own query
// (ids=solana&vs_currencies=usd) and is used as-is.
func NewClient(httpClient *http.Client, rawURL string, timeout time.Duration) (*Client, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("price URL required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{httpClient: httpClient, url: rawURL, timeout: timeout}, nil
}

// SOLPriceUSD returns the current SOL/USD conversion rate.
func (c *Client) SOLPriceUSD(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build price request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("price request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read price response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("malformed price payload")
	}

	price := gjson.GetBytes(body, "solana.usd")
	if !price.Exists() {
		return 0, fmt.Errorf("price payload missing solana.usd")
	}

	return price.Float(), nil
}
