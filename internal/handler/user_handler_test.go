package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "devconnector/internal/errors"
	"devconnector/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	mockService := new(MockUserService)
	mockService.On("Register", mock.Anything, "Test User", "taken@example.com", "password123").
		Return(nil, apperrors.ErrEmailTaken)

	h := NewUserHandler(mockService)
	c, _ := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Test User","email":"taken@example.com","password":"password123"}`)

	err := h.Register(c)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	mockService.AssertExpectations(t)
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "unknown email maps to 404",
			body: `{"email":"nobody@example.com","password":"password123"}`,
			setupMock: func(m *MockUserService) {
				m.On("Login", mock.Anything, "nobody@example.com", "password123").
					Return("", nil, apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "wrong password maps to 400",
			body: `{"email":"test@example.com","password":"wrong-pass"}`,
			setupMock: func(m *MockUserService) {
				m.On("Login", mock.Anything, "test@example.com", "wrong-pass").
					Return("", nil, apperrors.ErrPasswordIncorrect)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockUserService)
			tt.setupMock(mockService)

			h := NewUserHandler(mockService)
			c, _ := newTestContext(t, http.MethodPost, "/api/users/login", tt.body)

			err := h.Login(c)
			assert.Equal(t, tt.expectedStatus, httpStatus(t, err))
			mockService.AssertExpectations(t)
		})
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	mockService := new(MockUserService)
	mockService.On("Login", mock.Anything, "test@example.com", "password123").
		Return("signed-token", &model.User{ID: 1, Email: "test@example.com"}, nil)

	h := NewUserHandler(mockService)
	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"test@example.com","password":"password123"}`)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Bearer signed-token", resp.Token)
	mockService.AssertExpectations(t)
}
