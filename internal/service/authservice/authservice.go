package authservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByNames(ctx context.Context, firstName, lastName string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a regular user account and returns it with a fresh token.
func (s *Service) Register(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error) {
	return s.register(ctx, firstName, lastName, password, domain.RoleUser)
}

// RegisterAdmin creates an administrator account. The route itself is open by
// design of the original system; operators are expected to fence it off.
func (s *Service) RegisterAdmin(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error) {
	return s.register(ctx, firstName, lastName, password, domain.RoleAdmin)
}

func (s *Service) register(ctx context.Context, firstName, lastName, password string, role domain.Role) (*domain.User, string, error) {
	existing, err := s.userRepo.FindByNames(ctx, firstName, lastName)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, "", err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("firstName", firstName), zap.String("lastName", lastName))
		return nil, "", fmt.Errorf("user %s %s %w", firstName, lastName, domain.ErrConflict)
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, "", err
	}
	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, "", err
	}

	token, err := s.token(newUser)
	if err != nil {
		return nil, "", err
	}
	zap.L().Info("user registered", zap.Int("userID", newUser.ID), zap.String("role", string(role)))
	return newUser, token, nil
}

// Login authenticates by (firstName, lastName) and password. Missing user and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByNames(ctx, firstName, lastName)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, "", err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	token, err := s.token(user)
	if err != nil {
		return nil, "", err
	}
	zap.L().Info("user authenticated", zap.Int("userID", user.ID))
	return user, token, nil
}

// ResolveActor turns the token claims stored by the auth middleware into a
// domain actor. The role is re-read from the store, so a demoted admin loses
// access as soon as the old token is used.
func (s *Service) ResolveActor(ctx context.Context) (domain.Actor, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return domain.Actor{}, fmt.Errorf("%w: missing credentials", domain.ErrUnauthenticated)
	}
	id, err := claims.UserID()
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't resolve actor", zap.Error(err))
		return domain.Actor{}, err
	}
	if user == nil {
		return domain.Actor{}, fmt.Errorf("%w: unknown user", domain.ErrUnauthenticated)
	}
	return domain.Actor{ID: user.ID, Role: user.Role}, nil
}

func (s *Service) token(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(auth.TokenUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
	})
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
