// Package httpapi wires the gin transport for the POS API.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// ApiHandleFunctions holds the API handlers per bounded context.
type ApiHandleFunctions struct {
	MenuAPI    MenuAPI
	OrdersAPI  OrdersAPI
	ReportsAPI ReportsAPI
}

// NewRouter returns a new router with default gin middleware.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "GetMenuItems",
			Method:      http.MethodGet,
			Pattern:     "/v1/menu-items",
			HandlerFunc: handleFunctions.MenuAPI.GetMenuItems,
		},
		{
			Name:        "AddMenuItem",
			Method:      http.MethodPost,
			Pattern:     "/v1/menu-items",
			HandlerFunc: handleFunctions.MenuAPI.AddMenuItem,
		},
		{
			Name:        "UpdateMenuItem",
			Method:      http.MethodPut,
			Pattern:     "/v1/menu-items/:itemId",
			HandlerFunc: handleFunctions.MenuAPI.UpdateMenuItem,
		},
		{
			Name:        "DeleteMenuItem",
			Method:      http.MethodDelete,
			Pattern:     "/v1/menu-items/:itemId",
			HandlerFunc: handleFunctions.MenuAPI.DeleteMenuItem,
		},
		{
			Name:        "CreateOrder",
			Method:      http.MethodPost,
			Pattern:     "/v1/orders",
			HandlerFunc: handleFunctions.OrdersAPI.CreateOrder,
		},
		{
			Name:        "GetOrders",
			Method:      http.MethodGet,
			Pattern:     "/v1/orders",
			HandlerFunc: handleFunctions.OrdersAPI.GetOrders,
		},
		{
			Name:        "GetOrderById",
			Method:      http.MethodGet,
			Pattern:     "/v1/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.GetOrderById,
		},
		{
			Name:        "DeleteOrder",
			Method:      http.MethodDelete,
			Pattern:     "/v1/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.DeleteOrder,
		},
		{
			Name:        "GetSalesReport",
			Method:      http.MethodGet,
			Pattern:     "/v1/reports/sales",
			HandlerFunc: handleFunctions.ReportsAPI.GetSalesReport,
		},
		{
			Name:        "GetDashboardStats",
			Method:      http.MethodGet,
			Pattern:     "/v1/reports/dashboard",
			HandlerFunc: handleFunctions.ReportsAPI.GetDashboardStats,
		},
		{
			Name:        "GetHealth",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: getHealth,
		},
	}
}

func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
