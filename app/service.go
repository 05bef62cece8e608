package app

import (
	"context"
	"fmt"

	"github.com/maelcorre/gridcap/config"
	"github.com/maelcorre/gridcap/core/limits"
	coremetrics "github.com/maelcorre/gridcap/core/metrics"
	"github.com/maelcorre/gridcap/core/plan"
	"github.com/maelcorre/gridcap/infra/logger"
	inframetrics "github.com/maelcorre/gridcap/infra/metrics"
)

// Service wires the limits resolver, the plan builder and the metrics
// sinks from configuration and runs one expansion solve.
type Service struct {
	cfg      *config.Config
	resolver *limits.Resolver
	sink     coremetrics.MetricsSink
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	table := config.LoadLimits(cfg.LimitsPath, logger.New("limits"))
	resolver := limits.NewResolver(table, logger.New("limits"))

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{cfg: cfg, resolver: resolver, sink: sink, log: logg}, nil
}

// Resolver exposes the configured bounds resolver.
func (s *Service) Resolver() *limits.Resolver { return s.resolver }

// Run builds and solves the configured scenario, records the result and
// blocks only for the duration of the solve. The optional Prometheus
// endpoint serves until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if addr := s.cfg.Metrics.PromListen; addr != "" {
		go func() {
			if err := inframetrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sc := s.cfg.Plan.Scenario()
	m, err := plan.Build(sc, s.resolver, s.log)
	if err != nil {
		return fmt.Errorf("build plan: %w", err)
	}
	res, err := m.Solve(ctx, sc.Name)
	if err != nil {
		return fmt.Errorf("solve plan: %w", err)
	}

	s.log.Infof("scenario %s solved: objective %.2f in %s (run %s)",
		res.Scenario, res.Objective, res.Duration, res.RunID)
	s.log.Debugw("solved capacities", map[string]any{"capacities": res.Capacities})

	record := coremetrics.PlanResult{
		RunID:      res.RunID,
		Scenario:   res.Scenario,
		Objective:  res.Objective,
		Capacities: res.Capacities,
		SolvedAt:   res.SolvedAt,
		Duration:   res.Duration,
	}
	if err := s.sink.RecordPlanResult(record); err != nil {
		s.log.Errorf("record plan result: %v", err)
	}
	return nil
}
