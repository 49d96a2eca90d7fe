package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/GlebRadaev/bankcards/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, password, role
		FROM users
		WHERE id = $1
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByNames(ctx context.Context, firstName, lastName string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, password, role
		FROM users
		WHERE first_name = $1 AND last_name = $2
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, firstName, lastName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by names", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) ExistsByNames(ctx context.Context, firstName, lastName string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE first_name = $1 AND last_name = $2)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, firstName, lastName).Scan(&exists); err != nil {
		zap.L().Error("can't check user existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `
		SELECT id, first_name, last_name, password, role
		FROM users
		WHERE role = $1
		ORDER BY id
	`
	return r.findMany(ctx, query, string(role))
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, first_name, last_name, password, role
		FROM users
		ORDER BY id
	`
	return r.findMany(ctx, query)
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, user.FirstName, user.LastName, user.PasswordHash, string(user.Role)).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %s %s %w", user.FirstName, user.LastName, domain.ErrConflict)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET password = $1, role = $2
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, user.PasswordHash, string(user.Role), user.ID)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %w", domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %w", domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role string
	if err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.PasswordHash, &role); err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
