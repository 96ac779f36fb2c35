package ports

import (
	"context"

	"customer-onboarding/internal/model"
)

type AuthenticationService interface {
	Register(ctx context.Context, registration model.Registration) error
	Login(ctx context.Context, userName, password string) (*model.LoginResult, error)
	RefreshAccessToken(ctx context.Context, userName, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, userName string) error
}
