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

const accountNumberConstraint = "customer_accounts_account_number_key"

type AccountRepository struct {
	*config.Database
}

func NewAccountRepository(database *config.Database) *AccountRepository {
	return &AccountRepository{database}
}

// Create : сохраняет счёт. Совпадение номера счёта: model.ErrAccountNumberTaken,
// неизвестный клиент: model.ErrUserNotFound
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `
	INSERT INTO customer_accounts (
		id, customer_id, government_id, id_type, account_type, branch_name, routing_code, account_number,
		agreed_terms, agreed_privacy, employment_status, organisation_name, occupation, annual_income
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING created_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		account.UUID,
		account.CustomerID,
		account.GovernmentID,
		account.IDType,
		account.AccountType,
		account.BranchName,
		account.RoutingCode,
		account.AccountNumber,
		account.AgreedToTerms,
		account.AgreedToPrivacy,
		account.EmploymentStatus,
		account.OrganisationName,
		account.Occupation,
		account.AnnualIncome,
	).Scan(&account.CreatedAt)
	if err != nil {
		if uniqueViolationOn(err, accountNumberConstraint) {
			return model.ErrAccountNumberTaken
		}
		if foreignKeyViolationOn(err) {
			return model.ErrUserNotFound
		}
		return util.LogError("[AccountRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// ListByCustomerID : счета клиента в порядке открытия
func (r *AccountRepository) ListByCustomerID(ctx context.Context, customerID string) ([]model.Account, error) {
	query := `
	SELECT id, customer_id, government_id, id_type, account_type, branch_name, routing_code, account_number,
		agreed_terms, agreed_privacy, employment_status, organisation_name, occupation, annual_income, created_at
	FROM customer_accounts
	WHERE customer_id = $1
	ORDER BY created_at ASC, id ASC
	`

	accounts := []model.Account{}
	if err := sqlx.SelectContext(ctx, r.DB, &accounts, query, customerID); err != nil {
		return nil, util.LogError("[AccountRepo] не удалось получить список счетов", err)
	}
	return accounts, nil
}

// Update : меняет данные заявки по счёту клиента и дочитывает остальные поля.
// Счёт другого клиента не обновляется: model.ErrNotFound
func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	query := `
	UPDATE customer_accounts
	SET government_id = $3, id_type = $4, account_type = $5,
		employment_status = $6, organisation_name = $7, occupation = $8, annual_income = $9
	WHERE id = $1 AND customer_id = $2
	RETURNING id, customer_id, government_id, id_type, account_type, branch_name, routing_code, account_number,
		agreed_terms, agreed_privacy, employment_status, organisation_name, occupation, annual_income, created_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		account.UUID,
		account.CustomerID,
		account.GovernmentID,
		account.IDType,
		account.AccountType,
		account.EmploymentStatus,
		account.OrganisationName,
		account.Occupation,
		account.AnnualIncome,
	).StructScan(account)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return util.LogError("[AccountRepo] ошибка обновления счёта", err)
	}

	return nil
}
