package health

import (
	"context"

	"github.com/code1iners/ce1pers/pkg/logger"

	"github.com/stretchr/testify/mock"
)

type MockCacheChecker struct {
	mock.Mock
}

func (m *MockCacheChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Info(ctx context.Context, msg string, fields ...logger.Field) {}

func (m *MockLogger) Error(ctx context.Context, msg string, fields ...logger.Field) {}

func (m *MockLogger) Debug(ctx context.Context, msg string, fields ...logger.Field) {}

func (m *MockLogger) Warn(ctx context.Context, msg string, fields ...logger.Field) {
	m.Called(msg)
}
