// Package service combines the calculation engine with input storage and the
// analysis cache.
package service

import (
	"context"
	"fmt"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/internal/metrics"
	"github.com/refi/refi-calculator/internal/store"
	"github.com/refi/refi-calculator/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type RefiService struct {
	engine *calculation.CalculationEngine
	inputs store.InputStore
	cache  store.AnalysisCache
	log    *zap.Logger
}

// NewRefiService creates a service. cache may be nil to always compute.
func NewRefiService(engine *calculation.CalculationEngine, inputs store.InputStore, cache store.AnalysisCache, log *zap.Logger) *RefiService {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RefiService{engine: engine, inputs: inputs, cache: cache, log: log.Named("service")}
}

// Analyze returns the analysis for in, serving it from the cache when an
// identical set of inputs was analyzed before. Cache failures are logged and
// never fail the request.
func (s *RefiService) Analyze(ctx context.Context, in domain.LoanInputs) (*domain.Analysis, error) {
	ctx, span := tracing.Tracer.Start(ctx, "refi.Analyze")
	defer span.End()

	key := s.lookupKey(in)
	if key != "" {
		if a, ok := s.cached(ctx, key); ok {
			span.SetAttributes(attribute.Bool("refi.cache_hit", true))
			return a, nil
		}
	}

	a, err := s.engine.Analyze(ctx, in)
	if err != nil {
		metrics.Analyses.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("analyze: %w", err)
	}
	metrics.Analyses.WithLabelValues("ok").Inc()
	span.SetAttributes(
		attribute.Bool("refi.cache_hit", false),
		attribute.Int("refi.recoupment_months", a.Summary.Recoupment.WithoutAdditionalPayment.Month),
	)

	if key != "" {
		if err := s.cache.Set(ctx, key, a); err != nil {
			metrics.CacheEvents.WithLabelValues(metrics.CacheError).Inc()
			s.log.Warn("failed to cache analysis", zap.String("key", key), zap.Error(err))
		}
	}
	return a, nil
}

func (s *RefiService) lookupKey(in domain.LoanInputs) string {
	if s.cache == nil {
		return ""
	}
	key, err := store.CacheKey(in)
	if err != nil {
		s.log.Warn("inputs cannot be cached", zap.Error(err))
		return ""
	}
	return key
}

func (s *RefiService) cached(ctx context.Context, key string) (*domain.Analysis, bool) {
	a, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheEvents.WithLabelValues(metrics.CacheError).Inc()
		s.log.Warn("analysis cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	case !ok:
		metrics.CacheEvents.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}
	metrics.CacheEvents.WithLabelValues(metrics.CacheHit).Inc()
	s.log.Debug("analysis served from cache", zap.String("key", key))
	return a, true
}

// SaveInputs stores in and returns its identifier
func (s *RefiService) SaveInputs(ctx context.Context, in domain.LoanInputs) (string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "refi.SaveInputs")
	defer span.End()

	id, err := s.inputs.Save(ctx, in)
	if err != nil {
		metrics.StoredScenarios.WithLabelValues("save", "error").Inc()
		span.RecordError(err)
		return "", fmt.Errorf("save inputs: %w", err)
	}
	metrics.StoredScenarios.WithLabelValues("save", "ok").Inc()
	span.SetAttributes(attribute.String("refi.scenario_id", id))
	s.log.Info("saved loan inputs", zap.String("id", id))
	return id, nil
}

// LoadInputs fetches stored inputs. Unknown identifiers wrap store.ErrNotFound.
func (s *RefiService) LoadInputs(ctx context.Context, id string) (domain.LoanInputs, error) {
	ctx, span := tracing.Tracer.Start(ctx, "refi.LoadInputs")
	defer span.End()
	span.SetAttributes(attribute.String("refi.scenario_id", id))

	in, err := s.inputs.Get(ctx, id)
	if err != nil {
		metrics.StoredScenarios.WithLabelValues("load", "error").Inc()
		span.RecordError(err)
		return domain.LoanInputs{}, fmt.Errorf("load inputs: %w", err)
	}
	metrics.StoredScenarios.WithLabelValues("load", "ok").Inc()
	return in, nil
}

// AnalyzeSaved analyzes previously stored inputs
func (s *RefiService) AnalyzeSaved(ctx context.Context, id string) (*domain.Analysis, error) {
	in, err := s.LoadInputs(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, in)
}

// Schedule returns one scenario's amortization for stored inputs
func (s *RefiService) Schedule(ctx context.Context, id string, kind domain.ScenarioKind) (domain.Schedule, error) {
	in, err := s.LoadInputs(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.Schedule(in, kind)
}
