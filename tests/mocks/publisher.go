package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	sharedBus "github.com/davicafu/humanidadunida/internal/shared/infra/platform/bus"
)

// MockPublisher simula un publisher
type MockPublisher struct {
	mock.Mock
}

var _ sharedBus.EventBus = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, event interface{}) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
