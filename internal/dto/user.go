package dto

import "github.com/GlebRadaev/bankcards/internal/domain"

// UserResponseDTO never carries the password hash.
type UserResponseDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func FromUser(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
}

func FromUsers(users []domain.User) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type CreateUserRequestDTO struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=ROLE_USER ROLE_ADMIN"`
}

type ChangeRoleRequestDTO struct {
	Role string `json:"role" validate:"required,oneof=ROLE_USER ROLE_ADMIN"`
}
