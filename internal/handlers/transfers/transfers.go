package transfers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/dto"
	"github.com/GlebRadaev/bankcards/pkg/utils"
	"github.com/GlebRadaev/bankcards/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Service interface {
	Transfer(ctx context.Context, actor domain.Actor, fromID, toID int, amount decimal.Decimal, description *string) (*domain.Transfer, error)
	MyTransfers(ctx context.Context, actor domain.Actor) ([]domain.Transfer, error)
	CardTransfers(ctx context.Context, actor domain.Actor, cardID int) ([]domain.Transfer, error)
}

type ActorResolver interface {
	ResolveActor(ctx context.Context) (domain.Actor, error)
}

type TransferHandler struct {
	transferService Service
	resolver        ActorResolver
}

func New(transferService Service, resolver ActorResolver) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		resolver:        resolver,
	}
}

// Transfer takes fromCardId, toCardId, amount and an optional description as
// query parameters, matching the original API surface.
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	fromID, err := strconv.Atoi(q.Get("fromCardId"))
	if err != nil || fromID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid source card ID")
		return
	}
	toID, err := strconv.Atoi(q.Get("toCardId"))
	if err != nil || toID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid destination card ID")
		return
	}
	amount, err := validate.Amount(q.Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var description *string
	if raw := q.Get("description"); raw != "" {
		description = &raw
	}
	transfer, err := h.transferService.Transfer(r.Context(), actor, fromID, toID, amount, description)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransfer(transfer))
}

func (h *TransferHandler) MyTransfers(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	transfers, err := h.transferService.MyTransfers(r.Context(), actor)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransfers(transfers))
}

func (h *TransferHandler) CardTransfers(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	transfers, err := h.transferService.CardTransfers(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransfers(transfers))
}

func (h *TransferHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card ID")
		return 0, false
	}
	return id, true
}

func (h *TransferHandler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, err := h.resolver.ResolveActor(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return domain.Actor{}, false
	}
	return actor, true
}
