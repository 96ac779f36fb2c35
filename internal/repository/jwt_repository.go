package repository

import (
	"context"
	"database/sql"
	"errors"

	"customer-onboarding/config"
	"customer-onboarding/internal/model"
	"customer-onboarding/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type JWTRepository struct {
	*config.Database
}

func NewJWTRepository(database *config.Database) *JWTRepository {
	return &JWTRepository{database}
}

// ReplaceRefreshToken заменяет refresh токен пользователя в одной транзакции.
// Строка клиента блокируется через FOR UPDATE, поэтому параллельные входы одного пользователя
// выполняются по очереди и после фиксации остаётся ровно одна запись.
// Возвращает model.ErrUserNotFound, если клиента с таким логином нет
func (r *JWTRepository) ReplaceRefreshToken(ctx context.Context, userName string, token string) (_ *model.RefreshToken, err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, util.LogError("не удалось начать транзакцию", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var customerID string
	err = tx.GetContext(ctx, &customerID, `SELECT customer_id FROM customers WHERE user_name = $1 FOR UPDATE`, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, util.LogError("ошибка блокировки клиента", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_name = $1`, userName); err != nil {
		return nil, util.LogError("не удалось удалить прежний рефреш токен", err)
	}

	refreshToken := &model.RefreshToken{
		UUID:       uuid.NewString(),
		CustomerID: customerID,
		UserName:   userName,
		Token:      token,
	}
	query := `INSERT INTO refresh_tokens (id, customer_id, user_name, token)
				VALUES ($1, $2, $3, $4)
				RETURNING created_at
	`
	err = tx.QueryRowxContext(ctx, query,
		refreshToken.UUID,
		refreshToken.CustomerID,
		refreshToken.UserName,
		refreshToken.Token,
	).Scan(&refreshToken.CreatedAt)
	if err != nil {
		return nil, util.LogError("ошибка вставки данных в БД", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, util.LogError("не удалось зафиксировать транзакцию", err)
	}

	return refreshToken, nil
}

// FindByUserName ищет текущий refresh токен пользователя.
// Возвращает model.ErrNotFound, если записи нет
func (r *JWTRepository) FindByUserName(ctx context.Context, userName string) (*model.RefreshToken, error) {
	query := `SELECT id, customer_id, user_name, token, created_at FROM refresh_tokens WHERE user_name = $1`

	var refreshToken model.RefreshToken
	err := sqlx.GetContext(ctx, r.DB, &refreshToken, query, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("ошибка при выполнении запроса", err)
	}

	return &refreshToken, nil
}

// DeleteByUserName отзывает refresh токен пользователя. Отсутствие записи ошибкой не считается
func (r *JWTRepository) DeleteByUserName(ctx context.Context, userName string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_name = $1`, userName); err != nil {
		return util.LogError("не удалось удалить рефреш токен", err)
	}
	return nil
}
