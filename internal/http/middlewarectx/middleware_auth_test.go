package middlewarectx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(s *AuthServiceMock)
		wantStatusCode int
		wantNextCalled bool
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			setupMocks:     func(_ *AuthServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "header without token segment",
			authHeader:     "Bearer",
			setupMocks:     func(_ *AuthServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad.token.here",
			setupMocks: func(s *AuthServiceMock) {
				s.On("ValidateToken", mock.Anything, "bad.token.here").
					Return(nil, errors.New("invalid token")).Once()
			},
			wantStatusCode: http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:       "expired token is indistinguishable from forged",
			authHeader: "Bearer expired.token",
			setupMocks: func(s *AuthServiceMock) {
				s.On("ValidateToken", mock.Anything, "expired.token").
					Return(nil, errors.New("token is expired")).Once()
			},
			wantStatusCode: http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good.token",
			setupMocks: func(s *AuthServiceMock) {
				s.On("ValidateToken", mock.Anything, "good.token").
					Return(&models.User{UID: "user-uid-1", Username: "alice"}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			tt.setupMocks(authMock)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "user-uid-1", r.Context().Value(UserUID))
				assert.Equal(t, "alice", r.Context().Value(Username))
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(authMock, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/allorders", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			authMock.AssertExpectations(t)
		})
	}
}

// Без заголовка Authorization запрос не должен дойти ни до обработчика,
// ни до сервиса валидации токена.
func TestJWTMiddleware_NoValidationWithoutHeader(t *testing.T) {
	authMock := new(AuthServiceMock)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("protected handler must not be invoked")
	})

	handler := JWTMiddleware(authMock, newNoopLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/allorders", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	authMock.AssertNotCalled(t, "ValidateToken", mock.Anything, mock.Anything)
}
