package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedlink/internal/delivery/http/helpers"
	"schedlink/internal/domain"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpErr error
	loginErr  error
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &domain.User{ID: "u1", Email: email, Name: name}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "tok", &domain.User{ID: "u1", Email: email}, nil
}

func TestAuthController_SignUp(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			body:       `{"email":"host@example.com","password":"s3cret-pass","name":"Ana Host"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "short password",
			body:        `{"email":"host@example.com","password":"short","name":"Ana Host"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "email already in use",
			body:        `{"email":"host@example.com","password":"s3cret-pass","name":"Ana Host"}`,
			serviceErr:  domain.ErrDuplicateEmail,
			wantStatus:  http.StatusConflict,
			wantErrCode: helpers.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger(), &fakeAuthService{signUpErr: tt.serviceErr})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.SignUp(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			if tt.wantErrCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantErrCode, resp.Error.Code)
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"host@example.com","password":"s3cret-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		ctrl.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"token":"tok"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{loginErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"host@example.com","password":"wrong-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		ctrl.Login(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid credentials")
	})
}
