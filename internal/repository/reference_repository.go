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

// ReferenceRepository : справочники отделений и типов счетов в Postgres
type ReferenceRepository struct {
	*config.Database
}

func NewReferenceRepository(database *config.Database) *ReferenceRepository {
	return &ReferenceRepository{database}
}

func (r *ReferenceRepository) FindBranch(ctx context.Context, branchName string) (*model.Branch, error) {
	query := `SELECT branch_name, branch_code, routing_code FROM bank_branches WHERE branch_name = $1`

	var branch model.Branch
	if err := sqlx.GetContext(ctx, r.DB, &branch, query, branchName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[ReferenceRepo] не удалось найти отделение", err)
	}
	return &branch, nil
}

func (r *ReferenceRepository) FindAccountType(ctx context.Context, accountTypeName string) (*model.AccountType, error) {
	query := `SELECT account_type_name, account_type_code FROM bank_account_types WHERE account_type_name = $1`

	var accountType model.AccountType
	if err := sqlx.GetContext(ctx, r.DB, &accountType, query, accountTypeName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[ReferenceRepo] не удалось найти тип счёта", err)
	}
	return &accountType, nil
}
