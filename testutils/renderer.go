// Package testutils provides shared testing utilities across the application.
package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRenderer is a mock implementation of render.Renderer.
type MockRenderer struct {
	mock.Mock
}

// Render mocks rendering a page to HTML.
func (m *MockRenderer) Render(ctx context.Context, pageURL, waitSelector string) (string, error) {
	args := m.Called(ctx, pageURL, waitSelector)
	return args.String(0), args.Error(1)
}

// Available mocks the renderer availability probe.
func (m *MockRenderer) Available() bool {
	args := m.Called()
	return args.Bool(0)
}
