package ports

import (
	"context"

	"customer-onboarding/internal/model"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByCustomerID(ctx context.Context, customerID string) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
}

// CustomerService : userName берётся из access токена и должен принадлежать владельцу customerID
type CustomerService interface {
	AddProfile(ctx context.Context, userName string, details model.ProfileDetails) (*model.Profile, error)
	GetProfile(ctx context.Context, userName, customerID string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userName string, details model.ProfileDetails) (*model.Profile, error)
}
