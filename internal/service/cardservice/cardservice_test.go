package cardservice

import (
	"context"
	"testing"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	now      = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	validity = now.AddDate(4, 0, 0)
	admin    = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	owner    = domain.Actor{ID: 2, Role: domain.RoleUser}
)

func NewMock(t *testing.T) (*Service, *MockCardRepo, *MockUserRepo, *MockCodec) {
	ctrl := gomock.NewController(t)
	cardRepo := NewMockCardRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	codec := NewMockCodec(ctrl)

	service := New(cardRepo, userRepo, codec)
	service.now = func() time.Time { return now }
	return service, cardRepo, userRepo, codec
}

func activeCard() *domain.Card {
	return &domain.Card{
		ID:             3,
		Number:         "ciphertext",
		OwnerName:      "IVAN PETROV",
		ValidityPeriod: validity,
		Status:         domain.CardStatusActive,
		Balance:        decimal.Zero,
		UserID:         2,
	}
}

func TestCreate(t *testing.T) {
	service, cardRepo, userRepo, codec := NewMock(t)
	ctx := context.Background()

	t.Run("success with default validity", func(t *testing.T) {
		userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2}, nil)
		codec.EXPECT().Encrypt("1234567812345678").Return("ciphertext", nil)
		cardRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, card *domain.Card) (*domain.Card, error) {
			assert.Equal(t, "ciphertext", card.Number)
			assert.Equal(t, domain.CardStatusActive, card.Status)
			assert.True(t, card.Balance.IsZero())
			assert.Equal(t, validity, card.ValidityPeriod)
			card.ID = 3
			return card, nil
		})
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.Create(ctx, admin, "1234567812345678", "IVAN PETROV", 2, nil)
		assert.NoError(t, err)
		assert.Equal(t, 3, card.ID)
		assert.Equal(t, "**** **** **** 5678", card.MaskedNumber)
		assert.Equal(t, "ciphertext", card.Number)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		_, err := service.Create(ctx, owner, "1234567812345678", "IVAN PETROV", 2, nil)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("malformed pan", func(t *testing.T) {
		_, err := service.Create(ctx, admin, "1234", "IVAN PETROV", 2, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing owner", func(t *testing.T) {
		userRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		_, err := service.Create(ctx, admin, "1234567812345678", "IVAN PETROV", 99, nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("validity in the past", func(t *testing.T) {
		userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2}, nil)

		past := now.AddDate(-1, 0, 0)
		_, err := service.Create(ctx, admin, "1234567812345678", "IVAN PETROV", 2, &past)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRevealNumber(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("admin gets plaintext", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)

		pan, err := service.RevealNumber(ctx, admin, 3)
		assert.NoError(t, err)
		assert.Equal(t, "1234567812345678", pan)
	})

	t.Run("user forbidden", func(t *testing.T) {
		_, err := service.RevealNumber(ctx, owner, 3)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing card", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		_, err := service.RevealNumber(ctx, admin, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivate(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("blocked card reactivated", func(t *testing.T) {
		card := activeCard()
		card.Status = domain.CardStatusBlocked
		reason := "Fraud suspected"
		card.BlockReason = &reason
		cardRepo.EXPECT().FindByID(ctx, 3).Return(card, nil)
		cardRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Card) error {
			assert.Equal(t, domain.CardStatusActive, c.Status)
			assert.Nil(t, c.BlockReason)
			return nil
		})
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		updated, err := service.Activate(ctx, admin, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.CardStatusActive, updated.Status)
	})

	t.Run("expired card cannot be activated", func(t *testing.T) {
		card := activeCard()
		card.Status = domain.CardStatusBlocked
		card.ValidityPeriod = now.AddDate(0, 0, -1)
		cardRepo.EXPECT().FindByID(ctx, 3).Return(card, nil)
		cardRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Card) error {
			assert.Equal(t, domain.CardStatusExpired, c.Status)
			return nil
		})

		_, err := service.Activate(ctx, admin, 3)
		assert.ErrorIs(t, err, domain.ErrCardOperation)
	})
}

func TestDelete(t *testing.T) {
	service, cardRepo, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("zero balance", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		cardRepo.EXPECT().Delete(ctx, 3).Return(nil)

		assert.NoError(t, service.Delete(ctx, admin, 3))
	})

	t.Run("non-zero balance", func(t *testing.T) {
		card := activeCard()
		card.Balance = decimal.RequireFromString("0.01")
		cardRepo.EXPECT().FindByID(ctx, 3).Return(card, nil)

		err := service.Delete(ctx, admin, 3)
		assert.ErrorIs(t, err, domain.ErrCardOperation)
		assert.Contains(t, err.Error(), "Cannot delete card with non-zero balance")
	})

	t.Run("user forbidden", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, owner, 3), domain.ErrForbidden)
	})
}

func TestBlock(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		cardRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Card) error {
			assert.Equal(t, domain.CardStatusBlocked, c.Status)
			assert.Equal(t, "Fraud suspected", *c.BlockReason)
			return nil
		})
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.Block(ctx, admin, 3, "Fraud suspected")
		assert.NoError(t, err)
		assert.True(t, card.IsBlocked())
	})

	t.Run("already blocked", func(t *testing.T) {
		card := activeCard()
		card.Status = domain.CardStatusBlocked
		cardRepo.EXPECT().FindByID(ctx, 3).Return(card, nil)

		_, err := service.Block(ctx, admin, 3, "Again")
		assert.ErrorIs(t, err, domain.ErrCardOperation)
	})

	t.Run("empty reason", func(t *testing.T) {
		_, err := service.Block(ctx, admin, 3, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestApproveBlockRequest(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()
	reason := "Confirmed"

	t.Run("approved with admin reason", func(t *testing.T) {
		pending := activeCard()
		pending.BlockRequested = true
		cardRepo.EXPECT().FindByID(ctx, 3).Return(pending, nil)

		blocked := activeCard()
		blocked.Status = domain.CardStatusBlocked
		blocked.BlockReason = &reason
		cardRepo.EXPECT().ApproveBlock(ctx, 3, &reason, now).Return(blocked, nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.ApproveBlockRequest(ctx, admin, 3, &reason)
		assert.NoError(t, err)
		assert.Equal(t, "Confirmed", *card.BlockReason)
		assert.False(t, card.BlockRequested)
	})

	t.Run("lost the race", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		cardRepo.EXPECT().ApproveBlock(ctx, 3, (*string)(nil), now).Return(nil, nil)

		_, err := service.ApproveBlockRequest(ctx, admin, 3, nil)
		assert.ErrorIs(t, err, domain.ErrCardOperation)
		assert.Contains(t, err.Error(), "no block request pending")
	})
}

func TestRejectBlockRequest(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("rejected", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		cleared := activeCard()
		cardRepo.EXPECT().ClearBlockRequest(ctx, 3, now).Return(cleared, nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.RejectBlockRequest(ctx, admin, 3)
		assert.NoError(t, err)
		assert.False(t, card.BlockRequested)
	})

	t.Run("nothing pending", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		cardRepo.EXPECT().ClearBlockRequest(ctx, 3, now).Return(nil, nil)

		_, err := service.RejectBlockRequest(ctx, admin, 3)
		assert.ErrorIs(t, err, domain.ErrCardOperation)
	})
}

func TestGetMyCards(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	cardRepo.EXPECT().FindByOwner(ctx, 2).Return([]domain.Card{*activeCard()}, nil)
	codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
	codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

	cards, err := service.GetMyCards(ctx, owner)
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, "**** **** **** 5678", cards[0].MaskedNumber)
	assert.Empty(t, cards[0].Number, "ciphertext never leaves for non-admin views")
}

func TestGetByID(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("admin sees stored record", func(t *testing.T) {
		cardRepo.EXPECT().FindByID(ctx, 3).Return(activeCard(), nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.GetByID(ctx, admin, 3)
		assert.NoError(t, err)
		assert.Equal(t, "ciphertext", card.Number)
	})

	t.Run("owner sees masked view", func(t *testing.T) {
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(activeCard(), nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.GetByID(ctx, owner, 3)
		assert.NoError(t, err)
		assert.Empty(t, card.Number)
		assert.Equal(t, "**** **** **** 5678", card.MaskedNumber)
	})

	t.Run("foreign card looks missing", func(t *testing.T) {
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 7, 2).Return(nil, nil)

		_, err := service.GetByID(ctx, owner, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequestBlock(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(activeCard(), nil)
		flagged := activeCard()
		flagged.BlockRequested = true
		reason := "Lost card"
		flagged.BlockRequestReason = &reason
		cardRepo.EXPECT().SetBlockRequested(ctx, 3, "Lost card", now).Return(flagged, nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		card, err := service.RequestBlock(ctx, owner, 3, "Lost card")
		assert.NoError(t, err)
		assert.True(t, card.BlockRequested)
		assert.Equal(t, domain.CardStatusActive, card.Status)
	})

	t.Run("blocked card refuses", func(t *testing.T) {
		card := activeCard()
		card.Status = domain.CardStatusBlocked
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(card, nil)

		_, err := service.RequestBlock(ctx, owner, 3, "Lost card")
		assert.ErrorIs(t, err, domain.ErrCardOperation)
	})

	t.Run("already requested", func(t *testing.T) {
		card := activeCard()
		card.BlockRequested = true
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(card, nil)

		_, err := service.RequestBlock(ctx, owner, 3, "Lost card")
		assert.ErrorIs(t, err, domain.ErrCardOperation)
	})

	t.Run("empty reason", func(t *testing.T) {
		_, err := service.RequestBlock(ctx, owner, 3, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCancelBlockRequest(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("cancelled", func(t *testing.T) {
		card := activeCard()
		card.BlockRequested = true
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(card, nil)
		cardRepo.EXPECT().ClearBlockRequest(ctx, 3, now).Return(activeCard(), nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		updated, err := service.CancelBlockRequest(ctx, owner, 3)
		assert.NoError(t, err)
		assert.False(t, updated.BlockRequested)
	})

	t.Run("nothing pending", func(t *testing.T) {
		cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(activeCard(), nil)
		cardRepo.EXPECT().ClearBlockRequest(ctx, 3, now).Return(nil, nil)

		_, err := service.CancelBlockRequest(ctx, owner, 3)
		assert.ErrorIs(t, err, domain.ErrCardOperation)
	})
}

func TestGetBalance(t *testing.T) {
	service, cardRepo, _, _ := NewMock(t)
	ctx := context.Background()

	card := activeCard()
	card.Balance = decimal.RequireFromString("100.50")
	cardRepo.EXPECT().FindByIDAndOwner(ctx, 3, 2).Return(card, nil)

	balance, err := service.GetBalance(ctx, owner, 3)
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("100.50")))
}

func TestListByStatus(t *testing.T) {
	service, cardRepo, _, codec := NewMock(t)
	ctx := context.Background()

	t.Run("admin list", func(t *testing.T) {
		cardRepo.EXPECT().FindByStatus(ctx, domain.CardStatusActive).Return([]domain.Card{*activeCard()}, nil)
		codec.EXPECT().Decrypt("ciphertext").Return("1234567812345678", nil)
		codec.EXPECT().Mask("1234567812345678").Return("**** **** **** 5678")

		cards, err := service.ListByStatus(ctx, admin, domain.CardStatusActive)
		assert.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := service.ListByStatus(ctx, admin, domain.CardStatus("FROZEN"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("user forbidden", func(t *testing.T) {
		_, err := service.ListByStatus(ctx, owner, domain.CardStatusActive)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
