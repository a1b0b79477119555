package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/magabrotheeeer/portfolio-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/password"
	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
	services "github.com/magabrotheeeer/portfolio-tracker/internal/services/auth"
	"github.com/magabrotheeeer/portfolio-tracker/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newMaker() customjwt.Maker {
	return customjwt.NewJWTMaker("test_secret_key", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		setupMocks  func(r *UserRepoMock)
		wantUserUID string
		wantErr     error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "a@x.com",
			password: "secret1",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Username == "alice" &&
						user.Email == "a@x.com" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "secret1"
				})).Return("some-uuid-string", nil).Once()
			},
			wantUserUID: "some-uuid-string",
		},
		{
			name:     "duplicate username or email",
			username: "alice",
			email:    "a@x.com",
			password: "secret1",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", fmt.Errorf("storage.RegisterUser: %w", repository.ErrUserExists)).Once()
			},
			wantErr: services.ErrUserExists,
		},
		{
			name:     "storage failure",
			username: "alice",
			email:    "a@x.com",
			password: "secret1",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", errors.New("connection refused")).Once()
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setupMocks(repo)
			svc := services.NewAuthService(repo, newMaker())

			uid, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, services.ErrUserExists) {
					assert.ErrorIs(t, err, services.ErrUserExists)
				}
				assert.Empty(t, uid)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUserUID, uid)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.GetHash("secret1")
	require.NoError(t, err)

	storedUser := &models.User{
		UID:          "user-uid-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: hashed,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "secret1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "a@x.com").
					Return(storedUser, nil).Once()
			},
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "a@x.com").
					Return(storedUser, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "nobody@x.com").
					Return(nil, fmt.Errorf("storage.GetUserByEmail: %w", repository.ErrUserNotFound)).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setupMocks(repo)
			svc := services.NewAuthService(repo, newMaker())

			token, uid, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Empty(t, uid)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, storedUser.UID, uid)
			}
			repo.AssertExpectations(t)
		})
	}
}

// Ошибки "нет такого пользователя" и "неверный пароль" должны быть
// неразличимы для вызывающей стороны.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	hashed, err := password.GetHash("secret1")
	require.NoError(t, err)

	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").
		Return(&models.User{UID: "u1", Username: "alice", Email: "a@x.com", PasswordHash: hashed}, nil).Once()
	repo.On("GetUserByEmail", mock.Anything, "ghost@x.com").
		Return(nil, fmt.Errorf("storage.GetUserByEmail: %w", repository.ErrUserNotFound)).Once()

	svc := services.NewAuthService(repo, newMaker())

	_, _, errWrongPassword := svc.Login(context.Background(), "a@x.com", "wrong")
	_, _, errUnknownEmail := svc.Login(context.Background(), "ghost@x.com", "secret1")

	assert.Equal(t, errWrongPassword, errUnknownEmail)
}

func TestAuthService_ValidateToken(t *testing.T) {
	hashed, err := password.GetHash("secret1")
	require.NoError(t, err)
	storedUser := &models.User{UID: "user-uid-1", Username: "alice", Email: "a@x.com", PasswordHash: hashed}

	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").
		Return(storedUser, nil).Once()
	repo.On("GetUser", mock.Anything, "user-uid-1").
		Return(storedUser, nil).Once()

	svc := services.NewAuthService(repo, newMaker())

	token, uid, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	user, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uid, user.UID)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.ValidateToken(context.Background(), token+"tampered")
	assert.Error(t, err)
	// Подпорченный токен отклоняется до обращения к хранилищу.
	repo.AssertNumberOfCalls(t, "GetUser", 1)
}

// Корректно подписанный токен удалённого пользователя недействителен.
func TestAuthService_ValidateToken_DeletedUser(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetUser", mock.Anything, "gone-uid").
		Return(nil, fmt.Errorf("storage.GetUser: %w", repository.ErrUserNotFound)).Once()

	maker := newMaker()
	token, err := maker.GenerateToken("ghost", "gone-uid")
	require.NoError(t, err)

	svc := services.NewAuthService(repo, maker)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	repo.AssertExpectations(t)
}
