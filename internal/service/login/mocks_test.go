package login

import (
	"context"

	"github.com/code1iners/ce1pers/pkg/oauth2"

	"github.com/stretchr/testify/mock"
)

type MockStateStorage struct {
	mock.Mock
}

func (m *MockStateStorage) Save(ctx context.Context, state string, data oauth2.StateData) error {
	args := m.Called(ctx, state, data)
	return args.Error(0)
}

func (m *MockStateStorage) Consume(ctx context.Context, state string) (*oauth2.StateData, error) {
	args := m.Called(ctx, state)
	data, _ := args.Get(0).(*oauth2.StateData)
	return data, args.Error(1)
}

func (m *MockStateStorage) Close() error {
	args := m.Called()
	return args.Error(0)
}
