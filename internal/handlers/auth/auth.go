package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/dto"
	"github.com/GlebRadaev/bankcards/pkg/utils"
	"github.com/GlebRadaev/bankcards/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error)
	RegisterAdmin(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error)
	Login(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.authService.Register)
}

func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.authService.RegisterAdmin)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, firstName, lastName, password string) (*domain.User, string, error)) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validate.Struct(req); fieldErrors != nil {
		utils.RespondWithFieldErrors(w, "Validation failed", fieldErrors)
		return
	}
	user, token, err := fn(r.Context(), req.FirstName, req.LastName, req.Password)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusCreated, authResponse(user, token))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validate.Struct(req); fieldErrors != nil {
		utils.RespondWithFieldErrors(w, "Validation failed", fieldErrors)
		return
	}
	user, token, err := h.authService.Login(r.Context(), req.FirstName, req.LastName, req.Password)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, authResponse(user, token))
}

// Logout is stateless: tokens stay valid until expiry, the client just drops
// its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Logged out"})
}

func authResponse(user *domain.User, token string) dto.AuthResponseDTO {
	return dto.AuthResponseDTO{
		Token:     token,
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
	}
}
