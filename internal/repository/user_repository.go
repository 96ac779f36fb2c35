package repository

import (
	"context"
	"database/sql"
	"errors"

	"customer-onboarding/config"
	"customer-onboarding/internal/model"
	"customer-onboarding/internal/util"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateCustomer : сохраняет учётную запись клиента.
// Возвращает model.ErrDuplicateUser, если логин уже занят
func (r *UserRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	query := `
	INSERT INTO customers (customer_id, user_name, password_hash, name, phone_number)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		customer.CustomerID,
		customer.UserName,
		customer.PasswordHash,
		customer.Name,
		customer.PhoneNumber,
	).Scan(&customer.CreatedAt)
	if err != nil {
		if uniqueViolationOn(err, "") {
			return model.ErrDuplicateUser
		}
		return util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// FindByUserName : ищет клиента по логину
func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*model.Customer, error) {
	query := `SELECT customer_id, user_name, password_hash, name, phone_number, created_at FROM customers WHERE user_name = $1`

	var customer model.Customer
	err := sqlx.GetContext(ctx, r.DB, &customer, query, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти клиента по логину", err)
	}

	return &customer, nil
}
