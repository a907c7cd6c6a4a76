package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/cheezenes/pos-api/internal/domains/orders/adapters/http/mapper"
	ordertypes "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	orderports "github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

// IdempotencyKeyHeader lets a till retry a checkout safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrdersAPI wires HTTP transport with the orders bounded context service and workflows.
type OrdersAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator) OrdersAPI {
	return OrdersAPI{service: service, workflows: workflows}
}

// Post /v1/orders
// Price the cart, assign the next order number, and persist the order
func (api *OrdersAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.CheckoutOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderhttpmapper.ToCheckoutInput(payload, c.GetHeader(IdempotencyKeyHeader))
	result, err := api.checkout(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromCheckoutResult(result))
}

func (api *OrdersAPI) checkout(ctx context.Context, input ordertypes.CheckoutInput) (*ordertypes.CheckoutResult, error) {
	if api.workflows != nil {
		return api.workflows.Checkout(ctx, input)
	}
	return api.service.Checkout(ctx, input)
}

// Get /v1/orders
// List order history, newest first, capped at one page
func (api *OrdersAPI) GetOrders(c *gin.Context) {
	filter, ok := parseOrderFilter(c)
	if !ok {
		return
	}
	orders, err := api.service.List(c.Request.Context(), filter)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /v1/orders/:orderId
// Load a single order including its line items
func (api *OrdersAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Delete /v1/orders/:orderId
// Permanently remove an order and its line items from history
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseOrderFilter(c *gin.Context) (ordertypes.OrderFilter, bool) {
	filter := ordertypes.OrderFilter{
		PaymentMethod: c.Query("paymentMethod"),
		CustomerName:  c.Query("customerName"),
	}
	if raw := c.Query("startDate"); raw != "" {
		parsed, err := parseTimeParam(raw, false)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return ordertypes.OrderFilter{}, false
		}
		filter.StartDate = &parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := parseTimeParam(raw, true)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return ordertypes.OrderFilter{}, false
		}
		filter.EndDate = &parsed
	}
	return filter, true
}

// parseTimeParam accepts RFC 3339 timestamps or plain dates. A plain end date
// covers the whole day.
func parseTimeParam(raw string, endOfDay bool) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("timestamps must be RFC 3339 or YYYY-MM-DD")
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return parsed, nil
}
