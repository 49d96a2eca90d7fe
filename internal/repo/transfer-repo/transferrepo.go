package transferrepo

import (
	"context"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a ledger entry. SUCCESS rows are written inside the transfer
// transaction; FAILED rows are written after rollback on their own connection.
func (r *Repository) Create(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error) {
	query := `
		INSERT INTO transactions (from_card_id, to_card_id, amount, timestamp, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		transfer.FromCardID, transfer.ToCardID, transfer.Amount, transfer.Timestamp,
		transfer.Description, string(transfer.Status),
	).Scan(&transfer.ID)
	if err != nil {
		zap.L().Error("can't save transfer", zap.Error(err))
		return nil, err
	}
	return transfer, nil
}

// FindByUser lists every ledger entry that touches a card of the given owner,
// newest first.
func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Transfer, error) {
	query := `
		SELECT DISTINCT t.id, t.from_card_id, t.to_card_id, t.amount, t.timestamp, t.description, t.status
		FROM transactions t
		JOIN bank_cards c ON c.id = t.from_card_id OR c.id = t.to_card_id
		WHERE c.user_id = $1
		ORDER BY t.timestamp DESC, t.id DESC
	`
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindByCard(ctx context.Context, cardID int) ([]domain.Transfer, error) {
	query := `
		SELECT id, from_card_id, to_card_id, amount, timestamp, description, status
		FROM transactions
		WHERE from_card_id = $1 OR to_card_id = $1
		ORDER BY timestamp DESC, id DESC
	`
	return r.findMany(ctx, query, cardID)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Transfer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query transfers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			zap.L().Error("can't scan transfer row", zap.Error(err))
			return nil, err
		}
		transfers = append(transfers, *transfer)
	}
	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var transfer domain.Transfer
	var status string
	err := row.Scan(
		&transfer.ID, &transfer.FromCardID, &transfer.ToCardID, &transfer.Amount,
		&transfer.Timestamp, &transfer.Description, &status,
	)
	if err != nil {
		return nil, err
	}
	transfer.Status = domain.TransferStatus(status)
	return &transfer, nil
}
