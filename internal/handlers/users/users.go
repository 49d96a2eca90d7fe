package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/dto"
	"github.com/GlebRadaev/bankcards/pkg/utils"
	"github.com/GlebRadaev/bankcards/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetMe(ctx context.Context, actor domain.Actor) (*domain.User, error)
	ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	CreateUser(ctx context.Context, actor domain.Actor, firstName, lastName, password string, role domain.Role) (*domain.User, error)
	GetByID(ctx context.Context, actor domain.Actor, id int) (*domain.User, error)
	Search(ctx context.Context, actor domain.Actor, firstName, lastName string) (*domain.User, error)
	ListByRole(ctx context.Context, actor domain.Actor, role domain.Role) ([]domain.User, error)
	ChangeRole(ctx context.Context, actor domain.Actor, id int, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id int) error
}

// ActorResolver is the authorisation gate: it turns the authenticated request
// context into a domain actor.
type ActorResolver interface {
	ResolveActor(ctx context.Context) (domain.Actor, error)
}

type UserHandler struct {
	userService Service
	resolver    ActorResolver
}

func New(userService Service, resolver ActorResolver) *UserHandler {
	return &UserHandler{
		userService: userService,
		resolver:    resolver,
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	user, err := h.userService.GetMe(r.Context(), actor)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUser(user))
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validate.Struct(req); fieldErrors != nil {
		utils.RespondWithFieldErrors(w, "Validation failed", fieldErrors)
		return
	}
	if err := h.userService.ChangePassword(r.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Password changed"})
}

func (h *UserHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	users, err := h.userService.ListAll(r.Context(), actor)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUsers(users))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validate.Struct(req); fieldErrors != nil {
		utils.RespondWithFieldErrors(w, "Validation failed", fieldErrors)
		return
	}
	user, err := h.userService.CreateUser(r.Context(), actor, req.FirstName, req.LastName, req.Password, domain.Role(req.Role))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromUser(user))
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.userService.GetByID(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUser(user))
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	firstName := r.URL.Query().Get("firstName")
	lastName := r.URL.Query().Get("lastName")
	if firstName == "" || lastName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "firstName and lastName are required")
		return
	}
	user, err := h.userService.Search(r.Context(), actor, firstName, lastName)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUser(user))
}

func (h *UserHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	role := domain.Role(chi.URLParam(r, "role"))
	users, err := h.userService.ListByRole(r.Context(), actor, role)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUsers(users))
}

func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ChangeRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validate.Struct(req); fieldErrors != nil {
		utils.RespondWithFieldErrors(w, "Validation failed", fieldErrors)
		return
	}
	user, err := h.userService.ChangeRole(r.Context(), actor, id, domain.Role(req.Role))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUser(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(r.Context(), actor, id); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User deleted"})
}

func (h *UserHandler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, err := h.resolver.ResolveActor(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return domain.Actor{}, false
	}
	return actor, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}
