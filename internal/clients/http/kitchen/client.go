// Package kitchen holds the HTTP client that pushes orders to the kitchen display.
package kitchen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
	"github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

var _ ports.KitchenNotifier = (*Client)(nil)

// Client posts order tickets to a kitchen display webhook.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewKitchenClient instantiates the kitchen client with sane defaults.
func NewKitchenClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("kitchen base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}, nil
}

// ticketPayload is the wire shape the kitchen display consumes.
type ticketPayload struct {
	OrderNumber string       `json:"orderNumber"`
	OrderType   string       `json:"orderType"`
	TableNumber string       `json:"tableNumber,omitempty"`
	Items       []ticketItem `json:"items"`
}

type ticketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NotifyOrder pushes the order ticket to the kitchen display.
func (c *Client) NotifyOrder(ctx context.Context, order *domain.Order) error {
	if c == nil || c.httpClient == nil {
		return errors.New("kitchen client not configured")
	}
	if order == nil {
		return errors.New("kitchen ticket requires an order")
	}
	payload := ticketPayload{
		OrderNumber: order.Number,
		OrderType:   string(order.Type),
		TableNumber: order.TableNumber,
		Items:       make([]ticketItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, ticketItem{Name: item.Name, Quantity: item.Quantity})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode kitchen ticket: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tickets", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build kitchen request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call kitchen display: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("kitchen display error: %s", resp.Status)
	}
	return nil
}
