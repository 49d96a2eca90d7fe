package cardrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cardColumns = `id, card_number, card_owner_name, validity_period, status, balance,
	       block_reason, block_requested, block_request_reason, user_id, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		WHERE id = $1
	`
	card, err := scanCard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

// FindByIDAndOwner returns nil when the card does not exist or belongs to a
// different owner; the two cases are indistinguishable on purpose.
func (r *Repository) FindByIDAndOwner(ctx context.Context, id, ownerID int) (*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		WHERE id = $1 AND user_id = $2
	`
	card, err := scanCard(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find card by owner", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerID int) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		WHERE user_id = $1
		ORDER BY id
	`
	return r.findMany(ctx, query, ownerID)
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.CardStatus) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		WHERE status = $1
		ORDER BY id
	`
	return r.findMany(ctx, query, string(status))
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		ORDER BY id
	`
	return r.findMany(ctx, query)
}

func (r *Repository) CountByOwner(ctx context.Context, ownerID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bank_cards WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count cards", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
		INSERT INTO bank_cards (card_number, card_owner_name, validity_period, status, balance,
		       block_requested, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		card.Number, card.OwnerName, card.ValidityPeriod, string(card.Status), card.Balance,
		card.BlockRequested, card.UserID, card.CreatedAt, card.UpdatedAt,
	).Scan(&card.ID)
	if err != nil {
		zap.L().Error("can't save card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) Update(ctx context.Context, card *domain.Card) error {
	query := `
		UPDATE bank_cards
		SET status = $1, balance = $2, block_reason = $3, block_requested = $4,
		    block_request_reason = $5, updated_at = $6
		WHERE id = $7
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			string(card.Status), card.Balance, card.BlockReason, card.BlockRequested,
			card.BlockRequestReason, card.UpdatedAt, card.ID,
		)
		if err != nil {
			zap.L().Error("can't update card", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("card %w", domain.ErrNotFound)
		}
		return nil
	})
	return err
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE bank_cards
		SET balance = $1, updated_at = $2
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, balance, now, id)
	if err != nil {
		zap.L().Error("can't update card balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %w", domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bank_cards WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete card", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %w", domain.ErrNotFound)
	}
	return nil
}

// FindPairForUpdate locks both cards of a transfer with SELECT ... FOR UPDATE.
// ORDER BY id fixes the lock acquisition order, so two concurrent transfers
// over the same cards cannot deadlock. Must run inside a transaction.
func (r *Repository) FindPairForUpdate(ctx context.Context, firstID, secondID, ownerID int) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		WHERE id = ANY($1) AND user_id = $2
		ORDER BY id
		FOR UPDATE
	`
	return r.findMany(ctx, query, []int{firstID, secondID}, ownerID)
}

// SetBlockRequested raises the block-requested flag. The WHERE guard makes the
// operation atomic: it only succeeds while the card is ACTIVE with no pending
// request. Returns nil when the guard did not match.
func (r *Repository) SetBlockRequested(ctx context.Context, id int, reason string, now time.Time) (*domain.Card, error) {
	query := `
		UPDATE bank_cards
		SET block_requested = TRUE, block_request_reason = $2, updated_at = $3
		WHERE id = $1 AND status = 'ACTIVE' AND block_requested = FALSE
		RETURNING ` + cardColumns + `
	`
	return r.guardedUpdate(ctx, query, id, reason, now)
}

// ClearBlockRequest lowers the flag; succeeds only while a request is pending.
func (r *Repository) ClearBlockRequest(ctx context.Context, id int, now time.Time) (*domain.Card, error) {
	query := `
		UPDATE bank_cards
		SET block_requested = FALSE, block_request_reason = NULL, updated_at = $2
		WHERE id = $1 AND block_requested = TRUE
		RETURNING ` + cardColumns + `
	`
	return r.guardedUpdate(ctx, query, id, now)
}

// ApproveBlock turns a pending request into a block. A nil reason falls back
// to the reason the owner supplied with the request.
func (r *Repository) ApproveBlock(ctx context.Context, id int, reason *string, now time.Time) (*domain.Card, error) {
	query := `
		UPDATE bank_cards
		SET status = 'BLOCKED', block_reason = COALESCE($2, block_request_reason),
		    block_requested = FALSE, block_request_reason = NULL, updated_at = $3
		WHERE id = $1 AND block_requested = TRUE
		RETURNING ` + cardColumns + `
	`
	return r.guardedUpdate(ctx, query, id, reason, now)
}

func (r *Repository) FindExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM bank_cards
		WHERE validity_period <= $1 AND status <> 'EXPIRED'
		ORDER BY id
		LIMIT $2
	`
	return r.findMany(ctx, query, now, limit)
}

// MarkExpired reconciles a single overdue card; the guard keeps it idempotent.
func (r *Repository) MarkExpired(ctx context.Context, id int, now time.Time) (bool, error) {
	query := `
		UPDATE bank_cards
		SET status = 'EXPIRED', block_requested = FALSE, block_request_reason = NULL, updated_at = $2
		WHERE id = $1 AND validity_period <= $2 AND status <> 'EXPIRED'
	`
	tag, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		zap.L().Error("can't mark card expired", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) guardedUpdate(ctx context.Context, query string, id int, args ...any) (*domain.Card, error) {
	card, err := scanCard(r.db.QueryRow(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't apply card update", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Card, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			zap.L().Error("can't scan card row", zap.Error(err))
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	var status string
	err := row.Scan(
		&card.ID, &card.Number, &card.OwnerName, &card.ValidityPeriod, &status, &card.Balance,
		&card.BlockReason, &card.BlockRequested, &card.BlockRequestReason, &card.UserID,
		&card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	card.Status = domain.CardStatus(status)
	return &card, nil
}
