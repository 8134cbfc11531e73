package testutils

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jonesrussell/blogwatch/internal/domain"
)

// MockRunner is a mock implementation of the discovery run contract used
// by the API and the scheduled watcher.
type MockRunner struct {
	mock.Mock
}

// Run mocks one discovery pass.
func (m *MockRunner) Run(ctx context.Context, lookback time.Duration) ([]domain.Article, error) {
	args := m.Called(ctx, lookback)

	if articles, ok := args.Get(0).([]domain.Article); ok {
		return articles, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockSender is a mock implementation of the notification contract.
type MockSender struct {
	mock.Mock
}

// Notify mocks sending a discovery result.
func (m *MockSender) Notify(ctx context.Context, articles []domain.Article) error {
	args := m.Called(ctx, articles)
	return args.Error(0)
}
