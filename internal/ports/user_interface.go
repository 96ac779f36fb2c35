package ports

import (
	"context"

	"customer-onboarding/internal/model"
)

// CustomerRepository : учётные данные клиентов
type CustomerRepository interface {
	FindByUserName(ctx context.Context, userName string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, customer *model.Customer) error
}
