// Package mocks provides mock implementations of the sequence use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

// MockSequenceUseCase is a mock implementation of SequenceUseCase for testing.
type MockSequenceUseCase struct {
	mock.Mock
}

// Register mocks the Register method of SequenceUseCase.
func (m *MockSequenceUseCase) Register(ctx context.Context, name string, cfg lfsrDomain.Config) error {
	args := m.Called(ctx, name, cfg)
	return args.Error(0)
}

// Next mocks the Next method of SequenceUseCase.
func (m *MockSequenceUseCase) Next(ctx context.Context, name string) (lfsrDomain.State, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(lfsrDomain.State), args.Error(1)
}

// Take mocks the Take method of SequenceUseCase.
func (m *MockSequenceUseCase) Take(ctx context.Context, name string, count int) ([]lfsrDomain.State, error) {
	args := m.Called(ctx, name, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lfsrDomain.State), args.Error(1)
}

// Current mocks the Current method of SequenceUseCase.
func (m *MockSequenceUseCase) Current(ctx context.Context, name string) (lfsrDomain.State, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(lfsrDomain.State), args.Error(1)
}

// Configure mocks the Configure method of SequenceUseCase.
func (m *MockSequenceUseCase) Configure(ctx context.Context, name string, update lfsrDomain.Update) error {
	args := m.Called(ctx, name, update)
	return args.Error(0)
}

// Describe mocks the Describe method of SequenceUseCase.
func (m *MockSequenceUseCase) Describe(ctx context.Context, name string) (*lfsrDomain.Sequence, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lfsrDomain.Sequence), args.Error(1)
}

// List mocks the List method of SequenceUseCase.
func (m *MockSequenceUseCase) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Remove mocks the Remove method of SequenceUseCase.
func (m *MockSequenceUseCase) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
