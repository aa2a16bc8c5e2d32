// Package usecase defines the sequence registry: named LFSR generators that live for the
// whole process and are advanced on demand.
package usecase

import (
	"context"

	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

// SequenceUseCase defines the operations on registered sequences. Each sequence is
// advanced under its own lock, so distinct sequences never contend.
type SequenceUseCase interface {
	// Register builds a generator from cfg and stores it under name.
	Register(ctx context.Context, name string, cfg lfsrDomain.Config) error

	// Next advances the named sequence one step and returns the new state.
	Next(ctx context.Context, name string) (lfsrDomain.State, error)

	// Take advances the named sequence count times without interleaving other callers and
	// returns every state produced, oldest first.
	Take(ctx context.Context, name string, count int) ([]lfsrDomain.State, error)

	// Current returns the state of the named sequence without advancing it.
	Current(ctx context.Context, name string) (lfsrDomain.State, error)

	// Configure applies a partial reconfiguration. A rejected update changes nothing.
	Configure(ctx context.Context, name string, update lfsrDomain.Update) error

	// Describe returns the configuration snapshot of the named sequence.
	Describe(ctx context.Context, name string) (*lfsrDomain.Sequence, error)

	// List returns the registered names in ascending order.
	List(ctx context.Context) ([]string, error)

	// Remove drops the named sequence.
	Remove(ctx context.Context, name string) error
}
