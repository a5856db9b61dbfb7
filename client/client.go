// Package client is a thin typed wrapper around the trading REST API, for
// programs that drive the service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"
)

// APIError is a non-2xx response from the service, carrying the server's
// error detail when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://127.0.0.1:8080/api/v1".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &detail) == nil {
			apiErr.Detail = detail.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) ListInstruments(ctx context.Context) ([]models.Instrument, error) {
	var out []models.Instrument
	err := c.get(ctx, "/instruments", &out)
	return out, err
}

// PlaceOrder submits an order. Price is required for LIMIT orders and
// ignored for MARKET orders.
func (c *Client) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
	var out models.PlaceOrderResponse
	if err := c.post(ctx, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	var out models.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", orderID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTrades(ctx context.Context) ([]models.Trade, error) {
	var out []models.Trade
	err := c.get(ctx, "/trades", &out)
	return out, err
}

func (c *Client) GetPortfolio(ctx context.Context) ([]models.PortfolioEntry, error) {
	var out []models.PortfolioEntry
	err := c.get(ctx, "/portfolio", &out)
	return out, err
}
