package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	kitchenclient "github.com/cheezenes/pos-api/internal/clients/http/kitchen"
	ordermemory "github.com/cheezenes/pos-api/internal/domains/orders/adapters/memory"
	orderpostgres "github.com/cheezenes/pos-api/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/cheezenes/pos-api/internal/domains/orders/application"
	orderports "github.com/cheezenes/pos-api/internal/domains/orders/ports"
	orderworkflows "github.com/cheezenes/pos-api/internal/durable/temporal/workflows/orders"
	"github.com/cheezenes/pos-api/internal/platform/migrations"
	platformobservability "github.com/cheezenes/pos-api/internal/platform/observability"
	platformpostgres "github.com/cheezenes/pos-api/internal/platform/postgres"
	orderactivities "github.com/cheezenes/pos-api/internal/platform/temporal/activities/orders"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	const serviceName = "pos-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderRepo, idemStore, cleanupRepo := buildOrderStores(ctx, logger)
	defer cleanupRepo()

	// The service used by activities skips the kitchen notifier; delivery is a
	// dedicated activity with its own retry policy.
	orderService := orderapp.NewService(
		orderRepo,
		orderapp.WithIdempotencyStore(idemStore),
		orderapp.WithStoreTimeout(storeTimeoutFromEnv()),
	)
	activities := orderactivities.NewActivities(orderService, orderRepo, buildKitchenNotifier(logger))

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.CheckoutTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.CheckoutWorkflow, workflow.RegisterOptions{Name: orderworkflows.CheckoutWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})
	w.RegisterActivityWithOptions(activities.NotifyKitchen, activity.RegisterOptions{Name: orderactivities.NotifyKitchenActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.CheckoutTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrderStores(ctx context.Context, logger *slog.Logger) (orderports.Repository, orderports.IdempotencyStore, func()) {
	dsn := os.Getenv("POSTGRES_DSN")
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory order repository")
		return ordermemory.NewRepository(), ordermemory.NewIdempotencyStore(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordermemory.NewRepository(), ordermemory.NewIdempotencyStore(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		return ordermemory.NewRepository(), ordermemory.NewIdempotencyStore(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordermemory.NewRepository(), ordermemory.NewIdempotencyStore(), func() {}
	}
	logger.Info("worker order repository configured with postgres")
	return orderpostgres.NewRepository(db), orderpostgres.NewIdempotencyStore(db), func() { _ = sqlDB.Close() }
}

func buildKitchenNotifier(logger *slog.Logger) orderports.KitchenNotifier {
	baseURL := strings.TrimSpace(os.Getenv("KITCHEN_WEBHOOK_URL"))
	if baseURL == "" {
		return nil
	}
	notifier, err := kitchenclient.NewKitchenClient(baseURL, &http.Client{Timeout: 5 * time.Second})
	if err != nil {
		logger.Warn("kitchen display misconfigured, worker will skip notifications", slog.String("error", err.Error()))
		return nil
	}
	return notifier
}

func storeTimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("STORE_TIMEOUT_SECONDS"))
	if raw == "" {
		return 5 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
