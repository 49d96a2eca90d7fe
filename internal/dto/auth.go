package dto

type RegisterRequestDTO struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required"`
}

type AuthResponseDTO struct {
	Token     string `json:"token"`
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
