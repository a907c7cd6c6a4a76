// Package observability decorates the menu service with tracing, logging, and metrics.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	menutypes "github.com/cheezenes/pos-api/internal/domains/menu/application/types"
	menudomain "github.com/cheezenes/pos-api/internal/domains/menu/domain"
	menuports "github.com/cheezenes/pos-api/internal/domains/menu/ports"
)

const tracerName = "github.com/cheezenes/pos-api/internal/domains/menu/adapters/observability/service"

// Service decorates the menu service with tracing, logging, and metrics.
type Service struct {
	inner   menuports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core menu service.
func New(inner menuports.Service, opts ...Option) menuports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Add(ctx context.Context, input menutypes.ItemInput) (*menudomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "MenuService.Add",
		trace.WithAttributes(attribute.String("menu.category", input.Category)))
	defer span.End()

	s.logInfo(ctx, "adding menu item", slog.String("menu.name", input.Name), slog.String("menu.category", input.Category))
	result, err := s.inner.Add(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add menu item", slog.String("menu.name", input.Name))
	}
	s.metrics.recordMutation(ctx, "add")
	s.logInfo(ctx, "menu item added", slog.Int64("menu.id", result.ID))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*menudomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "MenuService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list menu items")
	}
	span.SetAttributes(attribute.Int("menu.count", len(result)))
	return result, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*menudomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "MenuService.Get", trace.WithAttributes(attribute.Int64("menu.id", id)))
	defer span.End()

	result, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load menu item", slog.Int64("menu.id", id))
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, input menutypes.ItemInput) (*menudomain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "MenuService.Update", trace.WithAttributes(attribute.Int64("menu.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating menu item", slog.Int64("menu.id", id))
	result, err := s.inner.Update(ctx, id, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update menu item", slog.Int64("menu.id", id))
	}
	s.metrics.recordMutation(ctx, "update")
	s.logInfo(ctx, "menu item updated", slog.Int64("menu.id", id))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "MenuService.Delete", trace.WithAttributes(attribute.Int64("menu.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting menu item", slog.Int64("menu.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete menu item", slog.Int64("menu.id", id))
	}
	s.metrics.recordMutation(ctx, "delete")
	s.logInfo(ctx, "menu item deleted", slog.Int64("menu.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	mutations metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	mutations, _ := m.Int64Counter("menu.service.mutations", metric.WithDescription("Number of menu catalog mutations"))
	return serviceMetrics{mutations: mutations}
}

func (m serviceMetrics) recordMutation(ctx context.Context, kind string) {
	if m.mutations != nil {
		m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("mutation.kind", kind)))
	}
}

var _ menuports.Service = (*Service)(nil)
