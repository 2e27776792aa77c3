package mocks

import (
	"time"

	"userapi/models"

	"github.com/stretchr/testify/mock"
)

// UserServiceMock is a testify/mock for services.UserService.
// We use this to test the HTTP handlers without real business logic.
type UserServiceMock struct{ mock.Mock }

func (m *UserServiceMock) Register(req models.RegisterRequest) (*models.User, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	args := m.Called(req, jwtSecret, exp)
	return args.String(0), args.Error(1)
}

func (m *UserServiceMock) CreateUser(req models.RegisterRequest) (*models.User, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) GetUser(id uint) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) DeleteUser(id uint) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) ListUsers(basePath string, q models.ListUsersQuery) (*models.PagedUsers, error) {
	args := m.Called(basePath, q)
	if v := args.Get(0); v != nil {
		return v.(*models.PagedUsers), args.Error(1)
	}
	return nil, args.Error(1)
}
