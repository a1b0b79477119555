package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockUID        string
		mockErr        error
		mockExpected   bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "valid login",
			requestBody:    Request{Email: "a@x.com", Password: "secret1"},
			mockToken:      "tok",
			mockUID:        "user-uid-1",
			mockExpected:   true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "wrong password",
			requestBody:    Request{Email: "a@x.com", Password: "wrong"},
			mockErr:        authservice.ErrInvalidCredentials,
			mockExpected:   true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid credentials",
		},
		{
			name:           "unknown email gives the same generic message",
			requestBody:    Request{Email: "ghost@x.com", Password: "secret1"},
			mockErr:        authservice.ErrInvalidCredentials,
			mockExpected:   true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid credentials",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{Email: "a@x.com"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantMessage:    "field Password is a required field",
		},
		{
			name:           "storage failure",
			requestBody:    Request{Email: "a@x.com", Password: "secret1"},
			mockErr:        errors.New("connection refused"),
			mockExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockExpected {
				req := tt.requestBody.(Request)
				authMock.On("Login", mock.Anything, req.Email, req.Password).
					Return(tt.mockToken, tt.mockUID, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), authMock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, tt.mockToken, got["token"])
				assert.Equal(t, tt.mockUID, got["userID"])
			} else {
				assert.Equal(t, tt.wantMessage, got["message"])
				assert.NotContains(t, got, "token")
			}
			authMock.AssertExpectations(t)
		})
	}
}
