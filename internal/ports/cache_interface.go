package ports

import (
	"context"

	"customer-onboarding/internal/model"
)

// ReferenceCache : Redis слой над справочниками. Промах кэша: nil без ошибки
type ReferenceCache interface {
	GetBranch(ctx context.Context, branchName string) (*model.Branch, error)
	SetBranch(ctx context.Context, branch *model.Branch) error
	GetAccountType(ctx context.Context, accountTypeName string) (*model.AccountType, error)
	SetAccountType(ctx context.Context, accountType *model.AccountType) error
}
