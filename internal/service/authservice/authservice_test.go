package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/pkg/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, jwtService := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret1").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				jwtService.EXPECT().GenerateJWT(auth.TokenUser{ID: 1, FirstName: "Ivan", LastName: "Petrov", Role: "ROLE_USER"}).
					Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "User already exists",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").
					Return(&domain.User{ID: 1, FirstName: "Ivan", LastName: "Petrov"}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Error finding user",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret1").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, token, err := service.Register(ctx, "Ivan", "Petrov", "secret1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrConflict) {
					assert.ErrorIs(t, err, domain.ErrConflict)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, domain.RoleUser, user.Role)
			assert.Equal(t, "hashedpassword", user.PasswordHash)
		})
	}
}

func TestRegisterAdmin(t *testing.T) {
	service, userRepo, passwordHasher, jwtService := NewMock(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByNames(ctx, "Anna", "Sidorova").Return(nil, nil)
	passwordHasher.EXPECT().HashPassword("secret1").Return("hashedpassword", nil)
	userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
		user.ID = 2
		return user, nil
	})
	jwtService.EXPECT().GenerateJWT(gomock.Any()).Return("token", nil)

	user, _, err := service.RegisterAdmin(ctx, "Anna", "Sidorova", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestLogin(t *testing.T) {
	service, userRepo, passwordHasher, jwtService := NewMock(t)
	ctx := context.Background()
	stored := &domain.User{ID: 1, FirstName: "Ivan", LastName: "Petrov", PasswordHash: "hashedpassword", Role: domain.RoleUser}

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   error
	}{
		{
			name: "Successful login",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret1").Return(true)
				jwtService.EXPECT().GenerateJWT(gomock.Any()).Return("token", nil)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").Return(nil, nil)
			},
			expectErr: domain.ErrUnauthenticated,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByNames(ctx, "Ivan", "Petrov").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret1").Return(false)
			},
			expectErr: domain.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, token, err := service.Login(ctx, "Ivan", "Petrov", "secret1")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "token", token)
			assert.Equal(t, 1, user.ID)
		})
	}
}

func TestResolveActor(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	claimsCtx := func(subject string) context.Context {
		claims := &auth.Claims{
			Role:             "ROLE_USER",
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		}
		return context.WithValue(context.Background(), auth.ClaimsKey, claims)
	}

	t.Run("resolved with fresh role", func(t *testing.T) {
		ctx := claimsCtx("1")
		userRepo.EXPECT().FindByID(ctx, 1).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		actor, err := service.ResolveActor(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.Actor{ID: 1, Role: domain.RoleAdmin}, actor)
	})

	t.Run("no claims in context", func(t *testing.T) {
		_, err := service.ResolveActor(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage subject", func(t *testing.T) {
		_, err := service.ResolveActor(claimsCtx("abc"))
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("stale user id", func(t *testing.T) {
		ctx := claimsCtx("42")
		userRepo.EXPECT().FindByID(ctx, 42).Return(nil, nil)

		_, err := service.ResolveActor(ctx)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
