package dto

import (
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/shopspring/decimal"
)

type TransferResponseDTO struct {
	ID          int             `json:"id"`
	FromCardID  int             `json:"fromCardId"`
	ToCardID    int             `json:"toCardId"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status" example:"SUCCESS"`
}

func FromTransfer(t *domain.Transfer) TransferResponseDTO {
	return TransferResponseDTO{
		ID:          t.ID,
		FromCardID:  t.FromCardID,
		ToCardID:    t.ToCardID,
		Amount:      t.Amount,
		Timestamp:   t.Timestamp,
		Description: t.Description,
		Status:      string(t.Status),
	}
}

func FromTransfers(transfers []domain.Transfer) []TransferResponseDTO {
	out := make([]TransferResponseDTO, 0, len(transfers))
	for i := range transfers {
		out = append(out, FromTransfer(&transfers[i]))
	}
	return out
}
