package cards

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/dto"
	"github.com/GlebRadaev/bankcards/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, pan, ownerName string, ownerID int, validity *time.Time) (*domain.Card, error)
	RevealNumber(ctx context.Context, actor domain.Actor, id int) (string, error)
	Activate(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error)
	Delete(ctx context.Context, actor domain.Actor, id int) error
	Block(ctx context.Context, actor domain.Actor, id int, reason string) (*domain.Card, error)
	ApproveBlockRequest(ctx context.Context, actor domain.Actor, id int, reason *string) (*domain.Card, error)
	RejectBlockRequest(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error)
	ListByStatus(ctx context.Context, actor domain.Actor, status domain.CardStatus) ([]domain.Card, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.Card, error)
	GetMyCards(ctx context.Context, actor domain.Actor) ([]domain.Card, error)
	GetByID(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error)
	RequestBlock(ctx context.Context, actor domain.Actor, id int, reason string) (*domain.Card, error)
	CancelBlockRequest(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error)
	GetBalance(ctx context.Context, actor domain.Actor, id int) (decimal.Decimal, error)
}

type ActorResolver interface {
	ResolveActor(ctx context.Context) (domain.Actor, error)
}

type CardHandler struct {
	cardService Service
	resolver    ActorResolver
}

func New(cardService Service, resolver ActorResolver) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		resolver:    resolver,
	}
}

func (h *CardHandler) GetMyCards(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	cards, err := h.cardService.GetMyCards(r.Context(), actor)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCards(cards))
}

func (h *CardHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := h.cardService.GetByID(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

func (h *CardHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	balance, err := h.cardService.GetBalance(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CardBalanceResponseDTO{CardID: id, Balance: balance})
}

func (h *CardHandler) RequestBlock(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := h.cardService.RequestBlock(r.Context(), actor, id, r.URL.Query().Get("reason"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

func (h *CardHandler) CancelBlockRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := h.cardService.CancelBlockRequest(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

// Create issues a card from query parameters, matching the original API
// surface: cardNumber, cardOwnerName, ownerId and an optional validityPeriod
// in YYYY-MM-DD form.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	ownerID, err := strconv.Atoi(q.Get("ownerId"))
	if err != nil || ownerID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}
	var validity *time.Time
	if raw := q.Get("validityPeriod"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid validity period, expected YYYY-MM-DD")
			return
		}
		validity = &parsed
	}
	card, err := h.cardService.Create(r.Context(), actor, q.Get("cardNumber"), q.Get("cardOwnerName"), ownerID, validity)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromCard(card))
}

func (h *CardHandler) RevealNumber(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	pan, err := h.cardService.RevealNumber(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CardNumberResponseDTO{CardID: id, CardNumber: pan})
}

func (h *CardHandler) Activate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := h.cardService.Activate(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.cardService.Delete(r.Context(), actor, id); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Card deleted"})
}

func (h *CardHandler) Block(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := h.cardService.Block(r.Context(), actor, id, r.URL.Query().Get("reason"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

func (h *CardHandler) ApproveBlockRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var reason *string
	if raw := r.URL.Query().Get("reason"); raw != "" {
		reason = &raw
	}
	card, err := h.cardService.ApproveBlockRequest(r.Context(), actor, id, reason)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

func (h *CardHandler) RejectBlockRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := h.cardService.RejectBlockRequest(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCard(card))
}

func (h *CardHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	status := domain.CardStatus(chi.URLParam(r, "status"))
	cards, err := h.cardService.ListByStatus(r.Context(), actor, status)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCards(cards))
}

func (h *CardHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	cards, err := h.cardService.ListAll(r.Context(), actor)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCards(cards))
}

func (h *CardHandler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
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
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card ID")
		return 0, false
	}
	return id, true
}
