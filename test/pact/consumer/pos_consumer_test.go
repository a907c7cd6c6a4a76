//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/cheezenes/pos-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type checkoutItem struct {
	MenuItemID int64   `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

type checkoutPayload struct {
	OrderType          string         `json:"orderType"`
	TableNumber        string         `json:"tableNumber,omitempty"`
	Items              []checkoutItem `json:"items"`
	DiscountPercentage float64        `json:"discountPercentage,omitempty"`
	PaymentMethod      string         `json:"paymentMethod"`
	CustomerName       string         `json:"customerName,omitempty"`
}

type checkoutResult struct {
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

type orderPayload struct {
	ID          int64   `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	OrderType   string  `json:"orderType"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestTillFrontendContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	cart := checkoutPayload{
		OrderType:   "dine",
		TableNumber: "T4",
		Items: []checkoutItem{
			{MenuItemID: 11, Name: "Masala Dosa", Quantity: 2, UnitPrice: 120},
			{MenuItemID: 12, Name: "Filter Coffee", Quantity: 1, UnitPrice: 40},
		},
		DiscountPercentage: 10,
		PaymentMethod:      "cash",
		CustomerName:       "Ravi",
	}
	checkoutBodyMatcher := matchers.Map{
		"orderType":   matchers.Term(cart.OrderType, "dine|takeaway|parcel"),
		"tableNumber": matchers.Like(cart.TableNumber),
		"items": matchers.ArrayMinLike(matchers.Map{
			"menuItemId": matchers.Like(cart.Items[0].MenuItemID),
			"name":       matchers.Like(cart.Items[0].Name),
			"quantity":   matchers.Like(cart.Items[0].Quantity),
			"unitPrice":  matchers.Like(cart.Items[0].UnitPrice),
		}, 1),
		"discountPercentage": matchers.Like(cart.DiscountPercentage),
		"paymentMethod":      matchers.Like(cart.PaymentMethod),
		"customerName":       matchers.Like(cart.CustomerName),
	}
	resultBodyMatcher := matchers.Map{
		"orderId":     matchers.Like(pacttest.ExistingOrderID),
		"orderNumber": matchers.Term(pacttest.ExampleOrderNumber, "ORD-\\d+"),
	}
	orderBodyMatcher := matchers.Map{
		"id":          matchers.Like(pacttest.ExistingOrderID),
		"orderNumber": matchers.Term(pacttest.ExampleOrderNumber, "ORD-\\d+"),
		"orderType":   matchers.Term("dine", "dine|takeaway|parcel"),
		"totalAmount": matchers.Like(252.0),
		"status":      matchers.S("completed"),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateOrdersBaseline).
		UponReceiving("a request to check out an order").
		WithRequest("POST", "/v1/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(checkoutBodyMatcher)
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(resultBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request to fetch an existing order").
		WithRequest("GET", fmt.Sprintf("/v1/orders/%d", pacttest.ExistingOrderID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(orderBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderMissing).
		UponReceiving("a request for a missing order").
		WithRequest("GET", fmt.Sprintf("/v1/orders/%d", pacttest.MissingOrderID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newTillClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := client.Checkout(ctx, cart)
		if err != nil {
			return fmt.Errorf("checkout: %w", err)
		}
		if result == nil || result.OrderNumber == "" {
			return fmt.Errorf("expected an order number on checkout")
		}

		fetched, err := client.GetOrder(ctx, pacttest.ExistingOrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if fetched == nil || fetched.ID != pacttest.ExistingOrderID {
			return fmt.Errorf("expected order id %d, got %+v", pacttest.ExistingOrderID, fetched)
		}

		if _, err := client.GetOrder(ctx, pacttest.MissingOrderID); err == nil {
			return fmt.Errorf("expected 404 for order %d", pacttest.MissingOrderID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		return nil
	})
	require.NoError(t, err)
}

type tillClient struct {
	baseURL    string
	httpClient *http.Client
}

func newTillClient(config pactconsumer.MockServerConfig) *tillClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &tillClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *tillClient) Checkout(ctx context.Context, cart checkoutPayload) (*checkoutResult, error) {
	body, err := json.Marshal(cart)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload checkoutResult
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *tillClient) GetOrder(ctx context.Context, id int64) (*orderPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/orders/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload orderPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
