package sensor

import (
	"context"
	"fmt"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/aq-tools/air-atlas/pkg/services/analysis"
	"github.com/aq-tools/air-atlas/pkg/services/collector"
	"github.com/aq-tools/air-atlas/pkg/services/registry"
	"github.com/rs/zerolog"
)

// ManagementService is the application-facing surface: it resolves a
// sensor profile, pulls its readings, and runs the analyzer over them.
type ManagementService interface {
	ListSensors(ctx context.Context) ([]domain.SensorProfile, error)
	GetReport(ctx context.Context, sensor, metric string, hours int) (*domain.Report, error)
	GetEvents(ctx context.Context, sensor, metric string, hours int) ([]domain.Event, error)
	GetAlerts(ctx context.Context, sensor, metric string) ([]domain.Alert, error)
}

// CollectorFactory builds a collector for a profile. Injected so tests
// and the CLI's CSV mode can swap the Sheets transport out.
type CollectorFactory func(ctx context.Context, profile domain.SensorProfile) (collector.Collector, error)

// SheetsCollectorFactory is the production factory.
func SheetsCollectorFactory(ctx context.Context, profile domain.SensorProfile) (collector.Collector, error) {
	return collector.NewSheetsCollector(ctx, profile)
}

type mgmtService struct {
	registry   registry.Registry
	collectors CollectorFactory
	analyzer   *analysis.Analyzer
	now        func() time.Time
}

func NewManagementService(
	reg registry.Registry,
	collectors CollectorFactory,
	analyzer *analysis.Analyzer,
) ManagementService {
	return &mgmtService{
		registry:   reg,
		collectors: collectors,
		analyzer:   analyzer,
		now:        time.Now,
	}
}

func (s *mgmtService) ListSensors(ctx context.Context) ([]domain.SensorProfile, error) {
	return s.registry.GetProfiles(ctx)
}

func (s *mgmtService) GetReport(ctx context.Context, sensor, metric string, hours int) (*domain.Report, error) {
	series, err := s.series(ctx, sensor, metric, hours)
	if err != nil {
		return nil, err
	}
	report := s.analyzer.Analyze(series)
	return &report, nil
}

func (s *mgmtService) GetEvents(ctx context.Context, sensor, metric string, hours int) ([]domain.Event, error) {
	series, err := s.series(ctx, sensor, metric, hours)
	if err != nil {
		return nil, err
	}
	return s.analyzer.DetectEvents(series), nil
}

func (s *mgmtService) GetAlerts(ctx context.Context, sensor, metric string) ([]domain.Alert, error) {
	series, err := s.series(ctx, sensor, metric, 0)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Alerts(series), nil
}

// series fetches and materializes a time-ordered series for the sensor.
// hours <= 0 means the whole sheet.
func (s *mgmtService) series(ctx context.Context, sensor, metric string, hours int) (domain.Series, error) {
	logger := zerolog.Ctx(ctx)

	profile, err := s.registry.GetProfile(ctx, sensor)
	if err != nil {
		return domain.Series{}, err
	}

	c, err := s.collectors(ctx, profile)
	if err != nil {
		return domain.Series{}, fmt.Errorf("create collector for %s: %w", sensor, err)
	}

	readings, stats, err := c.Fetch(ctx, metric)
	if err != nil {
		return domain.Series{}, fmt.Errorf("fetch readings for %s: %w", sensor, err)
	}

	if hours > 0 {
		cutoff := s.now().Add(-time.Duration(hours) * time.Hour)
		readings = collector.FilterSince(readings, cutoff)
	}

	logger.Debug().
		Str("sensor", sensor).
		Str("metric", metric).
		Int("readings", len(readings)).
		Int("dropped", stats.Dropped).
		Msg("materialized series")

	return analysis.NewSeries(metric, readings), nil
}
