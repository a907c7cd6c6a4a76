// Package observability decorates the reports service with tracing, logging, and metrics.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	reportsdomain "github.com/cheezenes/pos-api/internal/domains/reports/domain"
	reportsports "github.com/cheezenes/pos-api/internal/domains/reports/ports"
)

const tracerName = "github.com/cheezenes/pos-api/internal/domains/reports/adapters/observability/service"

// Service decorates the reports service with tracing, logging, and metrics.
type Service struct {
	inner   reportsports.Service
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

// New wraps the core reports service.
func New(inner reportsports.Service, opts ...Option) reportsports.Service {
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

func (s *Service) SalesReport(ctx context.Context, period string) (*reportsdomain.SalesReport, error) {
	ctx, span := s.tracer.Start(ctx, "ReportsService.SalesReport",
		trace.WithAttributes(attribute.String("report.period", period)))
	defer span.End()

	result, err := s.inner.SalesReport(ctx, period)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build sales report", slog.String("report.period", period))
	}
	span.SetAttributes(attribute.Int64("report.order_count", result.Summary.OrderCount))
	s.metrics.recordReport(ctx, string(result.Period))
	return result, nil
}

func (s *Service) DashboardStats(ctx context.Context) (*reportsdomain.DashboardStats, error) {
	ctx, span := s.tracer.Start(ctx, "ReportsService.DashboardStats")
	defer span.End()

	result, err := s.inner.DashboardStats(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build dashboard stats")
	}
	span.SetAttributes(attribute.Int64("dashboard.orders", result.Orders))
	return result, nil
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
	reportsBuilt metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	reportsBuilt, _ := m.Int64Counter("reports.service.built", metric.WithDescription("Number of sales reports built"))
	return serviceMetrics{reportsBuilt: reportsBuilt}
}

func (m serviceMetrics) recordReport(ctx context.Context, period string) {
	if m.reportsBuilt != nil {
		m.reportsBuilt.Add(ctx, 1, metric.WithAttributes(attribute.String("report.period", period)))
	}
}

var _ reportsports.Service = (*Service)(nil)
