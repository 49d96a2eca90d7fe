package dto

import (
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/shopspring/decimal"
)

// CardResponseDTO carries the mask for everyone and the stored ciphertext only
// when the view was built for an admin; the plaintext PAN never appears here.
type CardResponseDTO struct {
	ID                 int             `json:"id"`
	CardNumber         string          `json:"cardNumber,omitempty"`
	MaskedCardNumber   string          `json:"maskedCardNumber"`
	CardOwnerName      string          `json:"cardOwnerName"`
	ValidityPeriod     string          `json:"validityPeriod" example:"2029-06-15"`
	Status             string          `json:"status" example:"ACTIVE"`
	Balance            decimal.Decimal `json:"balance"`
	BlockReason        *string         `json:"blockReason,omitempty"`
	BlockRequested     bool            `json:"blockRequested"`
	BlockRequestReason *string         `json:"blockRequestReason,omitempty"`
	UserID             int             `json:"userId"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func FromCard(c *domain.Card) CardResponseDTO {
	return CardResponseDTO{
		ID:                 c.ID,
		CardNumber:         c.Number,
		MaskedCardNumber:   c.MaskedNumber,
		CardOwnerName:      c.OwnerName,
		ValidityPeriod:     c.ValidityPeriod.Format("2006-01-02"),
		Status:             string(c.Status),
		Balance:            c.Balance,
		BlockReason:        c.BlockReason,
		BlockRequested:     c.BlockRequested,
		BlockRequestReason: c.BlockRequestReason,
		UserID:             c.UserID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromCards(cards []domain.Card) []CardResponseDTO {
	out := make([]CardResponseDTO, 0, len(cards))
	for i := range cards {
		out = append(out, FromCard(&cards[i]))
	}
	return out
}

type CardNumberResponseDTO struct {
	CardID     int    `json:"cardId"`
	CardNumber string `json:"cardNumber"`
}

type CardBalanceResponseDTO struct {
	CardID  int             `json:"cardId"`
	Balance decimal.Decimal `json:"balance"`
}
