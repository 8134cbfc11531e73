package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/sources"
)

// MockStrategy is a mock implementation of strategy.Strategy.
type MockStrategy struct {
	mock.Mock

	kind sources.Kind
}

// NewMockStrategy creates a mock strategy serving the given source kind.
func NewMockStrategy(kind sources.Kind) *MockStrategy {
	return &MockStrategy{kind: kind}
}

// Kind returns the configured source kind.
func (m *MockStrategy) Kind() sources.Kind {
	return m.kind
}

// Fetch mocks candidate discovery for a source.
func (m *MockStrategy) Fetch(ctx context.Context, source sources.Config) ([]domain.Candidate, error) {
	args := m.Called(ctx, source)

	if candidates, ok := args.Get(0).([]domain.Candidate); ok {
		return candidates, args.Error(1)
	}

	return nil, args.Error(1)
}
