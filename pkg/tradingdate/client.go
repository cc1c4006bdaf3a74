// Package tradingdate provides a Go client for the calendar-server HTTP API.
package tradingdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to a calendar-server instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Day is the classification of one calendar date.
type Day struct {
	Market     string `json:"market"`
	Date       string `json:"date"`
	TradingDay bool   `json:"tradingDay"`
	EarlyClose bool   `json:"earlyClose"`
}

// Hours describes a session window; Open and Close are RFC3339 instants and
// empty when Trading is false.
type Hours struct {
	Market     string `json:"market"`
	Date       string `json:"date"`
	Scope      string `json:"scope"`
	Trading    bool   `json:"trading"`
	Open       string `json:"open"`
	Close      string `json:"close"`
	EarlyClose bool   `json:"earlyClose"`
}

type navigationResponse struct {
	Date string `json:"date"`
}

type marketsResponse struct {
	Markets []string `json:"markets"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Markets returns the market codes the server knows about.
func (c *Client) Markets(ctx context.Context) ([]string, error) {
	var resp marketsResponse
	if err := c.get(ctx, "/api/v1/markets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Markets, nil
}

// Day classifies the given ISO date ("YYYY-MM-DD") for the market.
func (c *Client) Day(ctx context.Context, market, date string) (*Day, error) {
	var resp Day
	if err := c.get(ctx, "/api/v1/"+market+"/day", url.Values{"date": {date}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NextTradingDay returns the first trading day after date.
func (c *Client) NextTradingDay(ctx context.Context, market, date string) (string, error) {
	var resp navigationResponse
	if err := c.get(ctx, "/api/v1/"+market+"/next", url.Values{"date": {date}}, &resp); err != nil {
		return "", err
	}
	return resp.Date, nil
}

// PrevTradingDay returns the first trading day before date.
func (c *Client) PrevTradingDay(ctx context.Context, market, date string) (string, error) {
	var resp navigationResponse
	if err := c.get(ctx, "/api/v1/"+market+"/prev", url.Values{"date": {date}}, &resp); err != nil {
		return "", err
	}
	return resp.Date, nil
}

// TradingHours returns the session window for the date and scope ("regular"
// or "extended").
func (c *Client) TradingHours(ctx context.Context, market, date, scope string) (*Hours, error) {
	q := url.Values{"date": {date}}
	if scope != "" {
		q.Set("scope", scope)
	}
	var resp Hours
	if err := c.get(ctx, "/api/v1/"+market+"/hours", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request and decodes the JSON response into out,
// surfacing the server's error message on non-2xx statuses.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
