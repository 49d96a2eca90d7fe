package userservice

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
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
}

type CardRepo interface {
	CountByOwner(ctx context.Context, ownerID int) (int, error)
}

type Service struct {
	userRepo    Repo
	cardRepo    CardRepo
	hashService auth.HashServiceInterface
}

func New(userRepo Repo, cardRepo CardRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		cardRepo:    cardRepo,
		hashService: hashService,
	}
}

func (s *Service) GetMe(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", domain.ErrNotFound)
	}
	return user, nil
}

// ChangePassword verifies the current password before setting the new one.
func (s *Service) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	user, err := s.GetMe(ctx, actor)
	if err != nil {
		return err
	}
	if !s.hashService.ComparePassword(user.PasswordHash, currentPassword) {
		return fmt.Errorf("%w: current password is incorrect", domain.ErrValidation)
	}
	hashed, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	user.PasswordHash = hashed
	return s.userRepo.Update(ctx, user)
}

func (s *Service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	return s.userRepo.FindAll(ctx)
}

func (s *Service) CreateUser(ctx context.Context, actor domain.Actor, firstName, lastName, password string, role domain.Role) (*domain.User, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	hashed, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashed,
		Role:         role,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	zap.L().Info("user created by admin", zap.Int("userID", created.ID), zap.String("role", string(role)))
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int) (*domain.User, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func (s *Service) Search(ctx context.Context, actor domain.Actor, firstName, lastName string) (*domain.User, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByNames(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s %s %w", firstName, lastName, domain.ErrNotFound)
	}
	return user, nil
}

func (s *Service) ListByRole(ctx context.Context, actor domain.Actor, role domain.Role) ([]domain.User, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	return s.userRepo.FindByRole(ctx, role)
}

func (s *Service) ChangeRole(ctx context.Context, actor domain.Actor, id int, role domain.Role) (*domain.User, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	user, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	zap.L().Info("user role changed", zap.Int("userID", id), zap.String("role", string(role)))
	return user, nil
}

// DeleteUser removes a user. Self-deletion is forbidden, and so is deleting a
// user who still owns cards, since a card requires an owner.
func (s *Service) DeleteUser(ctx context.Context, actor domain.Actor, id int) error {
	if err := adminOnly(actor); err != nil {
		return err
	}
	if actor.ID == id {
		return fmt.Errorf("%w: cannot delete own account", domain.ErrForbidden)
	}
	if _, err := s.GetByID(ctx, actor, id); err != nil {
		return err
	}
	count, err := s.cardRepo.CountByOwner(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: user still owns cards", domain.ErrCardOperation)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("user deleted", zap.Int("userID", id))
	return nil
}

func adminOnly(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: administrator role required", domain.ErrForbidden)
	}
	return nil
}
