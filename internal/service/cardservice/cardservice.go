package cardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Cards issued without an explicit validity date live this long.
const defaultValidityYears = 4

type CardRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Card, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID int) (*domain.Card, error)
	FindByOwner(ctx context.Context, ownerID int) ([]domain.Card, error)
	FindByStatus(ctx context.Context, status domain.CardStatus) ([]domain.Card, error)
	FindAll(ctx context.Context) ([]domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id int) error
	SetBlockRequested(ctx context.Context, id int, reason string, now time.Time) (*domain.Card, error)
	ClearBlockRequest(ctx context.Context, id int, now time.Time) (*domain.Card, error)
	ApproveBlock(ctx context.Context, id int, reason *string, now time.Time) (*domain.Card, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Codec hides the PAN cryptography behind the three operations the service
// needs.
type Codec interface {
	Encrypt(plainPAN string) (string, error)
	Decrypt(ciphertext string) (string, error)
	Mask(plainPAN string) string
}

type Service struct {
	cardRepo CardRepo
	userRepo UserRepo
	codec    Codec
	now      func() time.Time
}

func New(cardRepo CardRepo, userRepo UserRepo, codec Codec) *Service {
	return &Service{
		cardRepo: cardRepo,
		userRepo: userRepo,
		codec:    codec,
		now:      time.Now,
	}
}

// Create issues a card for the given owner: PAN encrypted at rest, balance
// zero, status ACTIVE. A nil validity defaults to today plus four years.
func (s *Service) Create(ctx context.Context, actor domain.Actor, pan, ownerName string, ownerID int, validity *time.Time) (*domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if !validate.IsPAN(pan) {
		return nil, fmt.Errorf("%w: card number must be 16 digits", domain.ErrValidation)
	}
	if ownerName == "" || len(ownerName) > 100 {
		return nil, fmt.Errorf("%w: card owner name must be 1-100 characters", domain.ErrValidation)
	}

	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("user %d %w", ownerID, domain.ErrNotFound)
	}

	now := s.now()
	validityPeriod := now.AddDate(defaultValidityYears, 0, 0)
	if validity != nil {
		if !validity.After(now) {
			return nil, fmt.Errorf("%w: validity date must be in the future", domain.ErrValidation)
		}
		validityPeriod = *validity
	}

	ciphertext, err := s.codec.Encrypt(pan)
	if err != nil {
		return nil, err
	}
	card := &domain.Card{
		Number:         ciphertext,
		OwnerName:      ownerName,
		ValidityPeriod: validityPeriod,
		Status:         domain.CardStatusActive,
		Balance:        decimal.Zero,
		UserID:         owner.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := s.cardRepo.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	zap.L().Info("card created", zap.Int("cardID", created.ID), zap.Int("ownerID", owner.ID))
	return s.view(created, true)
}

// RevealNumber returns the plaintext PAN. This is the only code path where
// the plaintext leaves the service, and it is admin-only.
func (s *Service) RevealNumber(ctx context.Context, actor domain.Actor, id int) (string, error) {
	if err := adminOnly(actor); err != nil {
		return "", err
	}
	card, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return s.codec.Decrypt(card.Number)
}

func (s *Service) Activate(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	card, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := card.Activate(s.now()); err != nil {
		return nil, err
	}
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	zap.L().Info("card activated", zap.Int("cardID", id))
	return s.view(card, true)
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int) error {
	if err := adminOnly(actor); err != nil {
		return err
	}
	card, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !card.Balance.IsZero() {
		return fmt.Errorf("%w: Cannot delete card with non-zero balance", domain.ErrCardOperation)
	}
	if err := s.cardRepo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("card deleted", zap.Int("cardID", id))
	return nil
}

func (s *Service) Block(ctx context.Context, actor domain.Actor, id int, reason string) (*domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: block reason is required", domain.ErrValidation)
	}
	card, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := card.Block(reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	zap.L().Info("card blocked", zap.Int("cardID", id))
	return s.view(card, true)
}

// ApproveBlockRequest turns a pending owner request into a block. The flag is
// re-checked by a guarded update, so a concurrent cancel makes this fail with
// "no block request pending" rather than blocking a card nobody asked about.
func (s *Service) ApproveBlockRequest(ctx context.Context, actor domain.Actor, id int, reason *string) (*domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	card, err := s.cardRepo.ApproveBlock(ctx, id, normalizeReason(reason), s.now())
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: no block request pending", domain.ErrCardOperation)
	}
	zap.L().Info("block request approved", zap.Int("cardID", id))
	return s.view(card, true)
}

func (s *Service) RejectBlockRequest(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	card, err := s.cardRepo.ClearBlockRequest(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: no block request pending", domain.ErrCardOperation)
	}
	zap.L().Info("block request rejected", zap.Int("cardID", id))
	return s.view(card, true)
}

func (s *Service) ListByStatus(ctx context.Context, actor domain.Actor, status domain.CardStatus) ([]domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	cards, err := s.cardRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.views(cards, true)
}

func (s *Service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.Card, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(cards, true)
}

// GetMyCards returns the actor's cards with the PAN masked and the ciphertext
// stripped, admin or not.
func (s *Service) GetMyCards(ctx context.Context, actor domain.Actor) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.views(cards, false)
}

// GetByID is owner-scoped for users and unrestricted for admins. A user
// probing another owner's card id gets NotFound, not Forbidden.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error) {
	if actor.IsAdmin() {
		card, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.view(card, true)
	}
	card, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return s.view(card, false)
}

func (s *Service) RequestBlock(ctx context.Context, actor domain.Actor, id int, reason string) (*domain.Card, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: block request reason is required", domain.ErrValidation)
	}
	card, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := card.RequestBlock(reason, now); err != nil {
		return nil, err
	}
	updated, err := s.cardRepo.SetBlockRequested(ctx, id, reason, now)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: block already requested", domain.ErrCardOperation)
	}
	zap.L().Info("block requested", zap.Int("cardID", id), zap.Int("userID", actor.ID))
	return s.view(updated, false)
}

func (s *Service) CancelBlockRequest(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error) {
	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return nil, err
	}
	updated, err := s.cardRepo.ClearBlockRequest(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: no block request pending", domain.ErrCardOperation)
	}
	zap.L().Info("block request cancelled", zap.Int("cardID", id), zap.Int("userID", actor.ID))
	return s.view(updated, false)
}

func (s *Service) GetBalance(ctx context.Context, actor domain.Actor, id int) (decimal.Decimal, error) {
	var card *domain.Card
	var err error
	if actor.IsAdmin() {
		card, err = s.load(ctx, id)
	} else {
		card, err = s.loadOwned(ctx, actor, id)
	}
	if err != nil {
		return decimal.Zero, err
	}
	return card.Balance, nil
}

// load fetches a card and reconciles its stored status with the validity
// date, persisting the change when the card has just expired.
func (s *Service) load(ctx context.Context, id int) (*domain.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card %d %w", id, domain.ErrNotFound)
	}
	return s.reconcile(ctx, card)
}

func (s *Service) loadOwned(ctx context.Context, actor domain.Actor, id int) (*domain.Card, error) {
	card, err := s.cardRepo.FindByIDAndOwner(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card %d %w", id, domain.ErrNotFound)
	}
	return s.reconcile(ctx, card)
}

func (s *Service) reconcile(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card.ReconcileExpiry(s.now()) {
		if err := s.cardRepo.Update(ctx, card); err != nil {
			return nil, err
		}
		zap.L().Info("card reconciled to expired", zap.Int("cardID", card.ID))
	}
	return card, nil
}

func (s *Service) view(card *domain.Card, admin bool) (*domain.Card, error) {
	plain, err := s.codec.Decrypt(card.Number)
	if err != nil {
		return nil, err
	}
	card.MaskedNumber = s.codec.Mask(plain)
	if !admin {
		card.Number = ""
	}
	return card, nil
}

func (s *Service) views(cards []domain.Card, admin bool) ([]domain.Card, error) {
	now := s.now()
	out := make([]domain.Card, 0, len(cards))
	for i := range cards {
		card := cards[i]
		// list reads reconcile the view only; the sweeper persists
		card.ReconcileExpiry(now)
		v, err := s.view(&card, admin)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func normalizeReason(reason *string) *string {
	if reason == nil || *reason == "" {
		return nil
	}
	return reason
}

func adminOnly(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: administrator role required", domain.ErrForbidden)
	}
	return nil
}
