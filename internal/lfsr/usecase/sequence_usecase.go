package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	validation "github.com/jellydator/validation"

	apperrors "github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
	lfsrService "github.com/glanchow/woklfsr/internal/lfsr/service"
	customValidation "github.com/glanchow/woklfsr/internal/validation"
)

// sequence pairs a generator with the lock serializing its callers.
type sequence struct {
	mu     sync.Mutex
	engine *lfsrService.Lfsr
}

type sequenceUseCase struct {
	mu        sync.RWMutex
	sequences map[string]*sequence
	logger    *slog.Logger
}

// NewSequenceUseCase creates an empty sequence registry. A nil logger discards output.
func NewSequenceUseCase(logger *slog.Logger) SequenceUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &sequenceUseCase{
		sequences: make(map[string]*sequence),
		logger:    logger,
	}
}

func validateName(name string) error {
	if err := validation.Validate(name, customValidation.SequenceName...); err != nil {
		return apperrors.Wrapf(lfsrDomain.ErrInvalidSequenceName, "%q: %v", name, err)
	}
	return nil
}

func (s *sequenceUseCase) get(name string) (*sequence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.sequences[name]
	if !ok {
		return nil, apperrors.Wrapf(lfsrDomain.ErrSequenceNotFound, "%q", name)
	}
	return seq, nil
}

// Register builds a generator from cfg and stores it under name.
func (s *sequenceUseCase) Register(ctx context.Context, name string, cfg lfsrDomain.Config) error {
	if err := validateName(name); err != nil {
		return err
	}

	engine, err := lfsrService.New(cfg)
	if err != nil {
		return apperrors.Wrapf(err, "sequence %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sequences[name]; exists {
		return apperrors.Wrapf(lfsrDomain.ErrSequenceAlreadyExists, "%q", name)
	}
	s.sequences[name] = &sequence{engine: engine}

	s.logger.InfoContext(ctx, "sequence registered",
		slog.String("sequence", name),
		slog.String("feedback", engine.Feedback().String()),
		slog.String("mask", engine.Mask().String()),
		slog.String("base", engine.Base()),
		slog.Int("pad_width", engine.PadWidth()),
	)
	return nil
}

// Next advances the named sequence one step.
func (s *sequenceUseCase) Next(ctx context.Context, name string) (lfsrDomain.State, error) {
	seq, err := s.get(name)
	if err != nil {
		return lfsrDomain.State{}, err
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()

	state, err := seq.engine.Next()
	if err != nil {
		s.logger.ErrorContext(ctx, "sequence step failed",
			slog.String("sequence", name),
			slog.Any("error", err),
		)
		return lfsrDomain.State{}, apperrors.Wrapf(err, "sequence %q", name)
	}

	s.logger.DebugContext(ctx, "sequence advanced", slog.String("sequence", name))
	return state, nil
}

// Take advances the named sequence count times under a single lock acquisition.
func (s *sequenceUseCase) Take(ctx context.Context, name string, count int) ([]lfsrDomain.State, error) {
	if count < lfsrDomain.MinTakeCount || count > lfsrDomain.MaxTakeCount {
		return nil, apperrors.Wrapf(
			lfsrDomain.ErrInvalidTakeCount,
			"count %d outside [%d, %d]",
			count,
			lfsrDomain.MinTakeCount,
			lfsrDomain.MaxTakeCount,
		)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seq, err := s.get(name)
	if err != nil {
		return nil, err
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()

	states := make([]lfsrDomain.State, 0, count)
	for i := 0; i < count; i++ {
		state, err := seq.engine.Next()
		if err != nil {
			return nil, apperrors.Wrapf(err, "sequence %q", name)
		}
		states = append(states, state)
	}

	s.logger.DebugContext(ctx, "sequence advanced",
		slog.String("sequence", name),
		slog.Int("count", count),
	)
	return states, nil
}

// Current returns the state of the named sequence without advancing it.
func (s *sequenceUseCase) Current(ctx context.Context, name string) (lfsrDomain.State, error) {
	seq, err := s.get(name)
	if err != nil {
		return lfsrDomain.State{}, err
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()

	return seq.engine.State(), nil
}

// Configure applies a partial reconfiguration to the named sequence.
func (s *sequenceUseCase) Configure(ctx context.Context, name string, update lfsrDomain.Update) error {
	seq, err := s.get(name)
	if err != nil {
		return err
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()

	if err := seq.engine.Configure(update); err != nil {
		return apperrors.Wrapf(err, "sequence %q", name)
	}

	s.logger.InfoContext(ctx, "sequence reconfigured",
		slog.String("sequence", name),
		slog.Bool("feedback", update.Feedback != nil),
		slog.Bool("state", update.State != nil),
		slog.Bool("base", update.Base != nil),
		slog.Bool("pad", update.Pad != nil),
	)
	return nil
}

// Describe returns the configuration snapshot of the named sequence.
func (s *sequenceUseCase) Describe(ctx context.Context, name string) (*lfsrDomain.Sequence, error) {
	seq, err := s.get(name)
	if err != nil {
		return nil, err
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()

	return &lfsrDomain.Sequence{
		Name:     name,
		Config:   seq.engine.Config(),
		Mask:     seq.engine.Mask(),
		PadWidth: seq.engine.PadWidth(),
	}, nil
}

// List returns the registered names in ascending order.
func (s *sequenceUseCase) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.sequences))
	for name := range s.sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Remove drops the named sequence.
func (s *sequenceUseCase) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sequences[name]; !ok {
		return apperrors.Wrapf(lfsrDomain.ErrSequenceNotFound, "%q", name)
	}
	delete(s.sequences, name)

	s.logger.InfoContext(ctx, "sequence removed", slog.String("sequence", name))
	return nil
}
