package transferservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CardRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Card, error)
	FindPairForUpdate(ctx context.Context, firstID, secondID, ownerID int) ([]domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal, now time.Time) error
}

type LedgerRepo interface {
	Create(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Transfer, error)
	FindByCard(ctx context.Context, cardID int) ([]domain.Transfer, error)
}

type Service struct {
	cardRepo  CardRepo
	ledger    LedgerRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(cardRepo CardRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		cardRepo:  cardRepo,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

// Transfer moves money between two cards of the same owner. Both cards are
// locked with SELECT ... FOR UPDATE in ascending id order inside one
// transaction; the SUCCESS ledger row commits together with the two balance
// writes. A failed attempt rolls everything back and leaves a FAILED ledger
// row written best-effort afterwards.
func (s *Service) Transfer(ctx context.Context, actor domain.Actor, fromID, toID int, amount decimal.Decimal, description *string) (*domain.Transfer, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if amount.Exponent() < -2 {
		return nil, fmt.Errorf("%w: amount scale must not exceed 2", domain.ErrValidation)
	}
	if description != nil && len(*description) > 255 {
		return nil, fmt.Errorf("%w: description must be at most 255 characters", domain.ErrValidation)
	}

	now := s.now()
	var transfer *domain.Transfer
	cardsLocked := false

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cards, err := s.cardRepo.FindPairForUpdate(ctx, fromID, toID, actor.ID)
		if err != nil {
			return err
		}
		if fromID == toID {
			if len(cards) == 1 {
				return fmt.Errorf("%w: cannot transfer to the same card", domain.ErrCardOperation)
			}
			return fmt.Errorf("%w: card is not owned by the current user", domain.ErrForbidden)
		}
		if len(cards) != 2 {
			return fmt.Errorf("%w: card is not owned by the current user", domain.ErrForbidden)
		}
		cardsLocked = true

		source, dest := pick(cards, fromID, toID)
		for _, card := range []*domain.Card{source, dest} {
			if card.ReconcileExpiry(now) {
				if err := s.cardRepo.Update(ctx, card); err != nil {
					return err
				}
			}
		}
		if !source.IsActive(now) {
			return fmt.Errorf("%w: Source card is not active", domain.ErrCardOperation)
		}
		if !dest.IsActive(now) {
			return fmt.Errorf("%w: Destination card is not active", domain.ErrCardOperation)
		}

		if err := source.Withdraw(amount, now); err != nil {
			return err
		}
		if err := dest.Deposit(amount, now); err != nil {
			return err
		}
		if err := s.cardRepo.UpdateBalance(ctx, source.ID, source.Balance, now); err != nil {
			return err
		}
		if err := s.cardRepo.UpdateBalance(ctx, dest.ID, dest.Balance, now); err != nil {
			return err
		}

		transfer, err = s.ledger.Create(ctx, &domain.Transfer{
			FromCardID:  fromID,
			ToCardID:    toID,
			Amount:      amount,
			Timestamp:   now,
			Description: description,
			Status:      domain.TransferStatusSuccess,
		})
		return err
	})
	if err != nil {
		if cardsLocked {
			s.recordFailure(ctx, fromID, toID, amount, description, now)
		}
		return nil, err
	}

	zap.L().Info("transfer completed",
		zap.Int("fromCardID", fromID), zap.Int("toCardID", toID), zap.String("amount", amount.StringFixed(2)))
	return transfer, nil
}

// MyTransfers lists every ledger entry touching a card of the actor.
func (s *Service) MyTransfers(ctx context.Context, actor domain.Actor) ([]domain.Transfer, error) {
	return s.ledger.FindByUser(ctx, actor.ID)
}

// CardTransfers lists the ledger entries of one card. A card the actor does
// not own reads as not found, the same as a missing one.
func (s *Service) CardTransfers(ctx context.Context, actor domain.Actor, cardID int) ([]domain.Transfer, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || (!actor.IsAdmin() && card.UserID != actor.ID) {
		return nil, fmt.Errorf("card %d %w", cardID, domain.ErrNotFound)
	}
	return s.ledger.FindByCard(ctx, cardID)
}

// recordFailure keeps failed attempts observable in the ledger. It runs after
// the rollback; its own failure is only logged.
func (s *Service) recordFailure(ctx context.Context, fromID, toID int, amount decimal.Decimal, description *string, now time.Time) {
	_, err := s.ledger.Create(ctx, &domain.Transfer{
		FromCardID:  fromID,
		ToCardID:    toID,
		Amount:      amount,
		Timestamp:   now,
		Description: description,
		Status:      domain.TransferStatusFailed,
	})
	if err != nil {
		zap.L().Error("can't record failed transfer", zap.Error(err))
	}
}

func pick(cards []domain.Card, fromID, toID int) (source, dest *domain.Card) {
	for i := range cards {
		switch cards[i].ID {
		case fromID:
			source = &cards[i]
		case toID:
			dest = &cards[i]
		}
	}
	return source, dest
}
