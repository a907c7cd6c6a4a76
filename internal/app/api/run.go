// Package api boots the point-of-sale HTTP process.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	kitchenclient "github.com/cheezenes/pos-api/internal/clients/http/kitchen"
	menumemory "github.com/cheezenes/pos-api/internal/domains/menu/adapters/memory"
	menuobs "github.com/cheezenes/pos-api/internal/domains/menu/adapters/observability"
	menupostgres "github.com/cheezenes/pos-api/internal/domains/menu/adapters/persistence/postgres"
	menuapp "github.com/cheezenes/pos-api/internal/domains/menu/application"
	menuports "github.com/cheezenes/pos-api/internal/domains/menu/ports"
	ordermemory "github.com/cheezenes/pos-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/cheezenes/pos-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/cheezenes/pos-api/internal/domains/orders/adapters/persistence/postgres"
	orderworkflows "github.com/cheezenes/pos-api/internal/domains/orders/adapters/workflows"
	orderapp "github.com/cheezenes/pos-api/internal/domains/orders/application"
	orderports "github.com/cheezenes/pos-api/internal/domains/orders/ports"
	reportsmemory "github.com/cheezenes/pos-api/internal/domains/reports/adapters/memory"
	reportsobs "github.com/cheezenes/pos-api/internal/domains/reports/adapters/observability"
	reportspostgres "github.com/cheezenes/pos-api/internal/domains/reports/adapters/persistence/postgres"
	reportsapp "github.com/cheezenes/pos-api/internal/domains/reports/application"
	reportsports "github.com/cheezenes/pos-api/internal/domains/reports/ports"
	"github.com/cheezenes/pos-api/internal/httpapi"
	"github.com/cheezenes/pos-api/internal/platform/migrations"
	platformobservability "github.com/cheezenes/pos-api/internal/platform/observability"
	platformpostgres "github.com/cheezenes/pos-api/internal/platform/postgres"
)

// Run boots the POS HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "pos-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos := buildRepositories(ctx, cfg, logger)
	defer repos.cleanup()

	menuService := menuobs.New(
		menuapp.NewService(repos.menu),
		menuobs.WithLogger(logger),
		menuobs.WithTracer(instruments.Tracer("internal.menu.application")),
		menuobs.WithMeter(instruments.Meter("internal.menu.application")),
	)

	orderOptions := []orderapp.Option{
		orderapp.WithIdempotencyStore(repos.idempotency),
		orderapp.WithStoreTimeout(cfg.StoreTimeout),
	}
	if notifier := buildKitchenNotifier(cfg, logger); notifier != nil {
		orderOptions = append(orderOptions, orderapp.WithKitchenNotifier(notifier))
	}
	orderService := orderobs.New(
		orderapp.NewService(repos.orders, orderOptions...),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	var checkoutWorkflows orderports.WorkflowOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline checkout", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		checkoutWorkflows = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	reportService := reportsobs.New(
		reportsapp.NewService(repos.reports, reportsapp.WithLocation(cfg.ReportTimezone)),
		reportsobs.WithLogger(logger),
		reportsobs.WithTracer(instruments.Tracer("internal.reports.application")),
		reportsobs.WithMeter(instruments.Meter("internal.reports.application")),
	)

	handlers := httpapi.ApiHandleFunctions{
		MenuAPI:    httpapi.NewMenuAPI(menuService),
		OrdersAPI:  httpapi.NewOrdersAPI(orderService, checkoutWorkflows),
		ReportsAPI: httpapi.NewReportsAPI(reportService),
	}

	router := httpapi.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("POS API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("POS API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// repositories bundles the storage adapters behind every bounded context.
type repositories struct {
	menu        menuports.Repository
	orders      orderports.Repository
	idempotency orderports.IdempotencyStore
	reports     reportsports.Repository
	cleanup     func()
}

// buildRepositories wires postgres-backed adapters when a DSN is configured and
// falls back to shared in-memory adapters otherwise.
func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) repositories {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memoryRepositories(cfg)
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(cfg)
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(cfg)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(cfg)
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		menu:        menupostgres.NewRepository(db),
		orders:      orderpostgres.NewRepository(db),
		idempotency: orderpostgres.NewIdempotencyStore(db),
		reports:     reportspostgres.NewRepository(db, cfg.ReportTimezone),
		cleanup:     func() { _ = sqlDB.Close() },
	}
}

// memoryRepositories shares one orders store between checkout and reporting so
// a dev instance reports on the orders it just rang up.
func memoryRepositories(cfg Config) repositories {
	orderRepo := ordermemory.NewRepository()
	return repositories{
		menu:        menumemory.NewRepository(),
		orders:      orderRepo,
		idempotency: ordermemory.NewIdempotencyStore(),
		reports:     reportsmemory.NewRepository(orderRepo, cfg.ReportTimezone),
		cleanup:     func() {},
	}
}

func buildKitchenNotifier(cfg Config, logger *slog.Logger) orderports.KitchenNotifier {
	if cfg.KitchenWebhookURL == "" {
		return nil
	}
	notifier, err := kitchenclient.NewKitchenClient(cfg.KitchenWebhookURL, nil)
	if err != nil {
		logger.Warn("kitchen display misconfigured, checkout will skip notifications", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("kitchen display notifications enabled")
	return notifier
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
