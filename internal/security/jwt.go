package security

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"customer-onboarding/config"
	"customer-onboarding/internal/model"
	"customer-onboarding/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Claims : subject: логин клиента
type Claims struct {
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

type Option func(*JWTService)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService : секрет читается один раз при старте и дальше не меняется
func NewJWTService(cfg *config.JWTConfig, opts ...Option) (*JWTService, error) {
	if cfg == nil || cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: не задан секрет подписи", model.ErrSigning)
	}

	accessTTL, err := cfg.AccessTTL()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSigning, err)
	}

	service := &JWTService{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// SignAccessToken выпускает access токен HS256 для userName.
// jti делает токены уникальными даже при совпадающих временных метках.
func (service *JWTService) SignAccessToken(userName string) (string, error) {
	if len(service.secretKey) == 0 {
		return "", model.ErrSigning
	}

	issuedAt := service.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userName,
			Issuer:    service.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(service.accessTTL)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secretKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrSigning, err)
	}

	return accessToken, nil
}

// ParseAccessToken проверяет подпись и срок действия токена
func (service *JWTService) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return service.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("невалидный токен: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("невалидный токен")
	}

	return claims, nil
}

func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				util.HandleError(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ParseAccessToken(strings.TrimPrefix(authorizationHeader, "Bearer "))
			if err != nil {
				zap.L().Debug("отклонён access токен", zap.Error(err))
				util.HandleError(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
