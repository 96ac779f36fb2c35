package ports

import (
	"context"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/security"
)

type RefreshTokenRepository interface {
	FindByUserName(ctx context.Context, userName string) (*model.RefreshToken, error)
	// ReplaceRefreshToken атомарно удаляет прежнюю запись пользователя и сохраняет новую
	ReplaceRefreshToken(ctx context.Context, userName string, token string) (*model.RefreshToken, error)
	DeleteByUserName(ctx context.Context, userName string) error
}

type JWTServiceInterface interface {
	SignAccessToken(userName string) (string, error)
	ParseAccessToken(tokenStr string) (*security.Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
	VerifyAbsent(password string) bool
}
