// Package solscan fetches on-chain SOL balances from a Solscan-compatible API.
package solscan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const lamportsPerSOL = 1_000_000_000

// Client implements ports.ChainSource against the Solscan account endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
}

// NewClient constructs a Solscan client. The http.Client is shared and
// long-lived; per-call deadlines come from the configured timeout.
func NewClient(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("solscan base URL required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(apiKey),
		timeout:    timeout,
	}, nil
}

// SOLBalance returns the SOL quantity held by the address.
func (c *Client) SOLBalance(ctx context.Context, address string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/account?%s", c.baseURL, url.Values{"address": {address}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build solscan request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("solscan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("solscan status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read solscan response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("malformed solscan payload")
	}

	lamports := gjson.GetBytes(body, "lamports")
	if !lamports.Exists() {
		return 0, fmt.Errorf("solscan payload missing lamports")
	}

	return lamports.Float() / lamportsPerSOL, nil
}
