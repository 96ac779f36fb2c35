package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"customer-onboarding/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockCustomerQuery = `SELECT customer_id FROM customers WHERE user_name = \$1 FOR UPDATE`
	deleteTokenQuery  = `DELETE FROM refresh_tokens WHERE user_name = \$1`
	insertTokenQuery  = `INSERT INTO refresh_tokens \(id, customer_id, user_name, token\)`
)

func TestJWTRepository_ReplaceRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("старый токен удаляется, новый вставляется в одной транзакции", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewJWTRepository(db)
		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery(lockCustomerQuery).
			WithArgs("alice01").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow("c-1"))
		mock.ExpectExec(deleteTokenQuery).
			WithArgs("alice01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertTokenQuery).
			WithArgs(sqlmock.AnyArg(), "c-1", "alice01", "token-2").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
		mock.ExpectCommit()

		record, err := repo.ReplaceRefreshToken(ctx, "alice01", "token-2")
		require.NoError(t, err)
		assert.Equal(t, "c-1", record.CustomerID)
		assert.Equal(t, "token-2", record.Token)
		assert.NotEmpty(t, record.UUID)
		assert.Equal(t, createdAt, record.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("клиента нет", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewJWTRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockCustomerQuery).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		record, err := repo.ReplaceRefreshToken(ctx, "ghost", "token")
		assert.Nil(t, record)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("сбой вставки откатывает удаление", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewJWTRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockCustomerQuery).
			WithArgs("alice01").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow("c-1"))
		mock.ExpectExec(deleteTokenQuery).
			WithArgs("alice01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertTokenQuery).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.ReplaceRefreshToken(ctx, "alice01", "token-2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJWTRepository_FindByUserName(t *testing.T) {
	ctx := context.Background()
	query := `SELECT id, customer_id, user_name, token, created_at FROM refresh_tokens WHERE user_name = \$1`

	t.Run("найден", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewJWTRepository(db)

		mock.ExpectQuery(query).
			WithArgs("alice01").
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "user_name", "token", "created_at"}).
				AddRow("t-1", "c-1", "alice01", "token-1", time.Now()))

		record, err := repo.FindByUserName(ctx, "alice01")
		require.NoError(t, err)
		assert.Equal(t, "token-1", record.Token)
	})

	t.Run("не найден", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewJWTRepository(db)

		mock.ExpectQuery(query).WithArgs("alice01").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByUserName(ctx, "alice01")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestJWTRepository_DeleteByUserName(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewJWTRepository(db)

	mock.ExpectExec(deleteTokenQuery).WithArgs("alice01").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByUserName(context.Background(), "alice01"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
