package usecase

import (
	"context"
	"time"

	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
	"github.com/glanchow/woklfsr/internal/metrics"
)

const metricsDomain = "lfsr"

// sequenceUseCaseWithMetrics decorates SequenceUseCase with metrics instrumentation.
type sequenceUseCaseWithMetrics struct {
	next    SequenceUseCase
	metrics metrics.BusinessMetrics
}

// NewSequenceUseCaseWithMetrics wraps a SequenceUseCase with metrics recording.
func NewSequenceUseCaseWithMetrics(useCase SequenceUseCase, m metrics.BusinessMetrics) SequenceUseCase {
	return &sequenceUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *sequenceUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Register records metrics for sequence registration.
func (s *sequenceUseCaseWithMetrics) Register(ctx context.Context, name string, cfg lfsrDomain.Config) error {
	start := time.Now()
	err := s.next.Register(ctx, name, cfg)
	s.record(ctx, "sequence_register", start, err)
	return err
}

// Next records metrics for single steps and counts the state drawn.
func (s *sequenceUseCaseWithMetrics) Next(ctx context.Context, name string) (lfsrDomain.State, error) {
	start := time.Now()
	state, err := s.next.Next(ctx, name)
	s.record(ctx, "sequence_next", start, err)
	if err == nil {
		s.metrics.RecordStates(ctx, name, 1)
	}
	return state, err
}

// Take records metrics for batch steps and counts the states drawn.
func (s *sequenceUseCaseWithMetrics) Take(ctx context.Context, name string, count int) ([]lfsrDomain.State, error) {
	start := time.Now()
	states, err := s.next.Take(ctx, name, count)
	s.record(ctx, "sequence_take", start, err)
	if err == nil {
		s.metrics.RecordStates(ctx, name, int64(len(states)))
	}
	return states, err
}

// Current records metrics for state reads.
func (s *sequenceUseCaseWithMetrics) Current(ctx context.Context, name string) (lfsrDomain.State, error) {
	start := time.Now()
	state, err := s.next.Current(ctx, name)
	s.record(ctx, "sequence_current", start, err)
	return state, err
}

// Configure records metrics for reconfiguration.
func (s *sequenceUseCaseWithMetrics) Configure(ctx context.Context, name string, update lfsrDomain.Update) error {
	start := time.Now()
	err := s.next.Configure(ctx, name, update)
	s.record(ctx, "sequence_configure", start, err)
	return err
}

// Describe records metrics for configuration snapshots.
func (s *sequenceUseCaseWithMetrics) Describe(ctx context.Context, name string) (*lfsrDomain.Sequence, error) {
	start := time.Now()
	sequence, err := s.next.Describe(ctx, name)
	s.record(ctx, "sequence_describe", start, err)
	return sequence, err
}

// List records metrics for listing.
func (s *sequenceUseCaseWithMetrics) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := s.next.List(ctx)
	s.record(ctx, "sequence_list", start, err)
	return names, err
}

// Remove records metrics for removal.
func (s *sequenceUseCaseWithMetrics) Remove(ctx context.Context, name string) error {
	start := time.Now()
	err := s.next.Remove(ctx, name)
	s.record(ctx, "sequence_remove", start, err)
	return err
}
