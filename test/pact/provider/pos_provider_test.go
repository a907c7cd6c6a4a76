//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/cheezenes/pos-api/test/pact"

	menumemory "github.com/cheezenes/pos-api/internal/domains/menu/adapters/memory"
	menuobs "github.com/cheezenes/pos-api/internal/domains/menu/adapters/observability"
	menuapp "github.com/cheezenes/pos-api/internal/domains/menu/application"
	ordermemory "github.com/cheezenes/pos-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/cheezenes/pos-api/internal/domains/orders/adapters/observability"
	orderworkflows "github.com/cheezenes/pos-api/internal/domains/orders/adapters/workflows"
	orderapp "github.com/cheezenes/pos-api/internal/domains/orders/application"
	orderdomain "github.com/cheezenes/pos-api/internal/domains/orders/domain"
	reportsmemory "github.com/cheezenes/pos-api/internal/domains/reports/adapters/memory"
	reportsobs "github.com/cheezenes/pos-api/internal/domains/reports/adapters/observability"
	reportsapp "github.com/cheezenes/pos-api/internal/domains/reports/application"
	"github.com/cheezenes/pos-api/internal/httpapi"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestPosProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrdersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders()
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders()
			if setup {
				app.seedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders()
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetOrders()
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	orderRepo *ordermemory.Repository
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	orderRepo := ordermemory.NewRepository()
	idempotencyStore := ordermemory.NewIdempotencyStore()
	orderService := orderobs.New(orderapp.NewService(orderRepo, orderapp.WithIdempotencyStore(idempotencyStore)))
	workflows := orderworkflows.NewInlineOrderWorkflows(orderService)

	menuService := menuobs.New(menuapp.NewService(menumemory.NewRepository()))
	reportService := reportsobs.New(reportsapp.NewService(reportsmemory.NewRepository(orderRepo, time.UTC)))

	handlers := httpapi.ApiHandleFunctions{
		MenuAPI:    httpapi.NewMenuAPI(menuService),
		OrdersAPI:  httpapi.NewOrdersAPI(orderService, workflows),
		ReportsAPI: httpapi.NewReportsAPI(reportService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = httpapi.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		orderRepo: orderRepo,
		server:    server,
	}
}

func (a *contractProviderApp) resetOrders() {
	a.orderRepo.Reset()
}

func (a *contractProviderApp) seedOrder(t testing.TB) {
	t.Helper()
	order, err := orderdomain.NewOrder(
		orderdomain.TypeDine,
		"T4",
		[]orderdomain.LineItem{
			{MenuItemID: 11, Name: "Masala Dosa", Quantity: 2, UnitPrice: 120},
			{MenuItemID: 12, Name: "Filter Coffee", Quantity: 1, UnitPrice: 40},
		},
		10,
		"cash",
		"Ravi",
		"",
	)
	require.NoError(t, err)
	order.AssignNumber(pacttest.ExampleOrderNumber)
	_, err = a.orderRepo.Create(context.Background(), order)
	require.NoError(t, err)
}
