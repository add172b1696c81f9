package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/session"
)

// MockSessionStore is a mock implementation of session.Store.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sess *session.Session, ttl time.Duration) error {
	args := m.Called(ctx, sess, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) Refresh(ctx context.Context, id string, ttl time.Duration) error {
	args := m.Called(ctx, id, ttl)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret123",
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		password       string
		setupMock      func(*MockSessionStore)
		wantValidation string
		wantErr        error
	}{
		{
			name:     "successful login",
			email:    "admin@example.com",
			password: "secret123",
			setupMock: func(m *MockSessionStore) {
				m.On("Save", mock.Anything, mock.AnythingOfType("*session.Session"), 24*time.Hour).Return(nil)
			},
		},
		{
			name:           "missing password",
			email:          "admin@example.com",
			password:       "",
			wantValidation: "Email and password are required",
		},
		{
			name:           "missing email",
			email:          "",
			password:       "secret123",
			wantValidation: "Email and password are required",
		},
		{
			name:           "malformed email",
			email:          "bad",
			password:       "secret123",
			wantValidation: "Invalid email format",
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "wrong email",
			email:    "someone@example.com",
			password: "secret123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockSessionStore)
			if tt.setupMock != nil {
				tt.setupMock(store)
			}

			svc := NewAuthService(testConfig(), store, 24*time.Hour)
			sess, err := svc.Login(context.Background(), tt.email, tt.password)

			switch {
			case tt.wantValidation != "":
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantValidation, vErr.Message)
				assert.Nil(t, sess)
				store.AssertNotCalled(t, "Save")
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sess)
				store.AssertNotCalled(t, "Save")
			default:
				assert.NoError(t, err)
				assert.NotNil(t, sess)
				assert.True(t, sess.IsAdmin)
				assert.Equal(t, tt.email, sess.AdminEmail)
				assert.NotEmpty(t, sess.ID)
				assert.WithinDuration(t, time.Now().UTC(), sess.LoginTime, time.Minute)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewAuthService(testConfig(), store, 24*time.Hour)
	sess, err := svc.Login(context.Background(), "admin@example.com", "secret123")

	assert.Error(t, err)
	assert.Nil(t, sess)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
	store.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Delete", mock.Anything, "sid-1").Return(nil)

	svc := NewAuthService(testConfig(), store, 24*time.Hour)
	assert.NoError(t, svc.Logout(context.Background(), "sid-1"))
	store.AssertExpectations(t)
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Delete", mock.Anything, "sid-1").Return(assert.AnError)

	svc := NewAuthService(testConfig(), store, 24*time.Hour)
	assert.Error(t, svc.Logout(context.Background(), "sid-1"))
	store.AssertExpectations(t)
}
