package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var userColumns = []string{"id", "first_name", "last_name", "password", "role"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)
	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		SELECT id, first_name, last_name, password, role
		FROM users
		WHERE id = $1
	`)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Existing user",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "Ivan", "Petrov", "hash", "ROLE_USER")
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, FirstName: "Ivan", LastName: "Petrov", PasswordHash: "hash", Role: domain.RoleUser},
		},
		{
			name: "Missing user returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByNames(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		SELECT id, first_name, last_name, password, role
		FROM users
		WHERE first_name = $1 AND last_name = $2
	`)

	t.Run("found", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(2, "Anna", "Sidorova", "hash", "ROLE_ADMIN")
		mock.ExpectQuery(query).WithArgs("Anna", "Sidorova").WillReturnRows(rows)

		user, err := repo.FindByNames(context.Background(), "Anna", "Sidorova")
		assert.NoError(t, err)
		assert.Equal(t, 2, user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("No", "Body").WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByNames(context.Background(), "No", "Body")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_ExistsByNames(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		SELECT EXISTS (SELECT 1 FROM users WHERE first_name = $1 AND last_name = $2)
	`)

	mock.ExpectQuery(query).WithArgs("Ivan", "Petrov").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByNames(context.Background(), "Ivan", "Petrov")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		INSERT INTO users (first_name, last_name, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("Ivan", "Petrov", "hash", "ROLE_USER").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		user := &domain.User{FirstName: "Ivan", LastName: "Petrov", PasswordHash: "hash", Role: domain.RoleUser}
		created, err := repo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, 7, created.ID)
	})

	t.Run("duplicate names", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("Ivan", "Petrov", "hash", "ROLE_USER").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user := &domain.User{FirstName: "Ivan", LastName: "Petrov", PasswordHash: "hash", Role: domain.RoleUser}
		_, err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE users
		SET password = $1, role = $2
		WHERE id = $3
	`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("newhash", "ROLE_ADMIN", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), &domain.User{ID: 1, PasswordHash: "newhash", Role: domain.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("newhash", "ROLE_ADMIN", 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), &domain.User{ID: 99, PasswordHash: "newhash", Role: domain.RoleAdmin})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("missing user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(99).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(context.Background(), 99), domain.ErrNotFound)
	})
}

func TestRepository_FindAllAndByRole(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("find all", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(1, "Ivan", "Petrov", "hash", "ROLE_USER").
			AddRow(2, "Anna", "Sidorova", "hash", "ROLE_ADMIN")
		mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, first_name, last_name, password, role
		FROM users
		ORDER BY id
	`)).WillReturnRows(rows)

		users, err := repo.FindAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("by role", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(2, "Anna", "Sidorova", "hash", "ROLE_ADMIN")
		mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, first_name, last_name, password, role
		FROM users
		WHERE role = $1
		ORDER BY id
	`)).WithArgs("ROLE_ADMIN").WillReturnRows(rows)

		users, err := repo.FindByRole(context.Background(), domain.RoleAdmin)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "Anna", users[0].FirstName)
	})
}
