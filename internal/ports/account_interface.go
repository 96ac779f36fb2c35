package ports

import (
	"context"

	"customer-onboarding/internal/model"
)

// ReferenceRepository : справочники отделений и типов счетов, только чтение
type ReferenceRepository interface {
	FindBranch(ctx context.Context, branchName string) (*model.Branch, error)
	FindAccountType(ctx context.Context, accountTypeName string) (*model.AccountType, error)
}

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	ListByCustomerID(ctx context.Context, customerID string) ([]model.Account, error)
	Update(ctx context.Context, account *model.Account) error
}

type AccountNumberSynthesizer interface {
	Synthesize(ctx context.Context, branchName, accountTypeName string) (*model.SynthesizedAccount, error)
}

// AccountService : userName берётся из access токена
type AccountService interface {
	OpenAccount(ctx context.Context, userName string, application model.AccountApplication) (*model.Account, error)
	ListAccounts(ctx context.Context, userName, customerID string) ([]model.Account, error)
	UpdateAccount(ctx context.Context, userName string, update model.AccountUpdate) (*model.Account, error)
}
