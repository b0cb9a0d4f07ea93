package session_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ecmarket/shopclient/pkg/api"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Login(ctx context.Context, username, password string) (api.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(api.LoginResponse), args.Error(1)
}

func (m *mockAPI) Register(ctx context.Context, username, email, password string) error {
	args := m.Called(ctx, username, email, password)
	return args.Error(0)
}

func (m *mockAPI) Me(ctx context.Context, token string) (api.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(api.User), args.Error(1)
}

func (m *mockAPI) UpdateRole(ctx context.Context, token, role string) (api.User, error) {
	args := m.Called(ctx, token, role)
	return args.Get(0).(api.User), args.Error(1)
}
