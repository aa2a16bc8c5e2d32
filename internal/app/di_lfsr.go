package app

import (
	"context"
	"fmt"
	"sort"

	lfsrUsecase "github.com/glanchow/woklfsr/internal/lfsr/usecase"
)

// SequenceUseCase returns the sequence registry with every configured sequence registered.
func (c *Container) SequenceUseCase() (lfsrUsecase.SequenceUseCase, error) {
	var err error
	c.sequenceUseCaseInit.Do(func() {
		c.sequenceUseCase, err = c.initSequenceUseCase()
		if err != nil {
			c.setInitError("sequenceUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initError("sequenceUseCase"); exists {
		return nil, storedErr
	}
	return c.sequenceUseCase, nil
}

// initSequenceUseCase builds the registry and registers the sequences from configuration.
func (c *Container) initSequenceUseCase() (lfsrUsecase.SequenceUseCase, error) {
	logger := c.Logger()

	generators, err := c.config.Generators()
	if err != nil {
		return nil, fmt.Errorf("failed to load sequence configuration: %w", err)
	}

	baseUseCase := lfsrUsecase.NewSequenceUseCase(logger)

	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	ctx := context.Background()
	for _, name := range names {
		generator := generators[name]
		cfg, err := generator.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid configuration for sequence %q: %w", name, err)
		}
		if err := baseUseCase.Register(ctx, name, cfg); err != nil {
			return nil, fmt.Errorf("failed to register sequence %q: %w", name, err)
		}
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for sequence use case: %w", err)
		}
		return lfsrUsecase.NewSequenceUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
