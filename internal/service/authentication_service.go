package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/ports"
	"customer-onboarding/internal/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthenticationService struct {
	customers     ports.CustomerRepository
	refreshTokens ports.RefreshTokenRepository
	signer        ports.JWTServiceInterface
	hasher        ports.PasswordHasher
	metrics       ports.MetricsRecorder
	logger        *zap.Logger

	rotateRefreshToken bool
	refreshTokenTTL    time.Duration
	now                func() time.Time
	generateToken      func() (string, error)
}

type AuthOption func(*AuthenticationService)

// WithRefreshRotation : при обновлении access токена выдаётся и новый refresh токен
func WithRefreshRotation(rotate bool) AuthOption {
	return func(s *AuthenticationService) {
		s.rotateRefreshToken = rotate
	}
}

// WithRefreshTokenTTL : 0: refresh токен не истекает
func WithRefreshTokenTTL(ttl time.Duration) AuthOption {
	return func(s *AuthenticationService) {
		s.refreshTokenTTL = ttl
	}
}

func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthenticationService) {
		s.now = now
	}
}

func WithTokenGenerator(generate func() (string, error)) AuthOption {
	return func(s *AuthenticationService) {
		s.generateToken = generate
	}
}

func NewAuthenticationService(
	customers ports.CustomerRepository,
	refreshTokens ports.RefreshTokenRepository,
	signer ports.JWTServiceInterface,
	hasher ports.PasswordHasher,
	recorder ports.MetricsRecorder,
	logger *zap.Logger,
	opts ...AuthOption,
) *AuthenticationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AuthenticationService{
		customers:     customers,
		refreshTokens: refreshTokens,
		signer:        signer,
		hasher:        hasher,
		metrics:       metricsOrNoop(recorder),
		logger:        logger.Named("auth"),
		now:           time.Now,
		generateToken: security.GenerateRefreshToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register создаёт учётную запись клиента.
// Возвращает *model.ValidationError с первым нарушенным правилом или model.ErrDuplicateUser
func (s *AuthenticationService) Register(ctx context.Context, registration model.Registration) error {
	if err := validateRegistration(registration); err != nil {
		s.metrics.RecordRegistration(outcomeInvalid)
		return err
	}

	hash, err := s.hasher.Hash(registration.Password)
	if err != nil {
		s.metrics.RecordRegistration(outcomeError)
		return fmt.Errorf("[AuthService] не удалось создать хэш пароля: %w", err)
	}

	customer := &model.Customer{
		CustomerID:   uuid.NewString(),
		UserName:     registration.UserName,
		PasswordHash: hash,
		Name:         registration.Name,
		PhoneNumber:  registration.PhoneNumber,
	}

	if err := s.customers.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			s.metrics.RecordRegistration(outcomeDuplicate)
			return model.ErrDuplicateUser
		}
		s.metrics.RecordRegistration(outcomeError)
		return fmt.Errorf("[AuthService] ошибка создания клиента: %w", err)
	}

	s.metrics.RecordRegistration(outcomeSuccess)
	s.logger.Info("клиент зарегистрирован", zap.String("customer_id", customer.CustomerID))
	return nil
}

// Authenticate возвращает идентификатор клиента.
// Неизвестный логин и неверный пароль дают одну и ту же ошибку model.ErrInvalidCredentials,
// для неизвестного логина bcrypt всё равно выполняется
func (s *AuthenticationService) Authenticate(ctx context.Context, userName, password string) (string, error) {
	customer, err := s.customers.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.hasher.VerifyAbsent(password)
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("[AuthService] ошибка поиска клиента: %w", err)
	}

	if !s.hasher.Verify(customer.PasswordHash, password) {
		return "", model.ErrInvalidCredentials
	}

	return customer.CustomerID, nil
}

// IssueTokens выдаёт новый access токен и новый refresh токен, прежний refresh токен перестаёт действовать
func (s *AuthenticationService) IssueTokens(ctx context.Context, userName string) (*model.TokensPair, error) {
	accessToken, err := s.signer.SignAccessToken(userName)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка подписи access токена: %w", err)
	}

	refreshToken, err := s.IssueRefreshToken(ctx, userName)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// IssueRefreshToken генерирует refresh токен и заменяет им запись пользователя в БД
func (s *AuthenticationService) IssueRefreshToken(ctx context.Context, userName string) (string, error) {
	token, err := s.generateToken()
	if err != nil {
		return "", fmt.Errorf("[AuthService] ошибка генерации refresh токена: %w", err)
	}

	if _, err := s.refreshTokens.ReplaceRefreshToken(ctx, userName, token); err != nil {
		return "", fmt.Errorf("[AuthService] не удалось сохранить refresh токен: %w", err)
	}

	return token, nil
}

func (s *AuthenticationService) Login(ctx context.Context, userName, password string) (*model.LoginResult, error) {
	customerID, err := s.Authenticate(ctx, userName, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			s.metrics.RecordLogin(outcomeInvalid)
		} else {
			s.metrics.RecordLogin(outcomeError)
		}
		return nil, err
	}

	tokens, err := s.IssueTokens(ctx, userName)
	if err != nil {
		s.metrics.RecordLogin(outcomeError)
		s.logger.Error("не удалось выдать токены", zap.String("customer_id", customerID), zap.Error(err))
		return nil, err
	}

	s.metrics.RecordLogin(outcomeSuccess)
	return &model.LoginResult{
		TokensPair: *tokens,
		CustomerID: customerID,
	}, nil
}

// RefreshAccessToken выдаёт новый access токен по действующему refresh токену.
// По умолчанию refresh токен не меняется и возвращается как был предъявлен
func (s *AuthenticationService) RefreshAccessToken(ctx context.Context, userName, refreshToken string) (*model.TokensPair, error) {
	stored, err := s.refreshTokens.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.metrics.RecordRefresh(outcomeInvalid)
			return nil, model.ErrInvalidCredentials
		}
		s.metrics.RecordRefresh(outcomeError)
		return nil, fmt.Errorf("[AuthService] ошибка поиска refresh токена: %w", err)
	}

	if !security.RefreshTokensEqual(stored.Token, refreshToken) {
		s.metrics.RecordRefresh(outcomeInvalid)
		return nil, model.ErrInvalidCredentials
	}

	if s.refreshTokenTTL > 0 && s.now().Sub(stored.CreatedAt) > s.refreshTokenTTL {
		s.metrics.RecordRefresh(outcomeInvalid)
		s.logger.Info("refresh токен просрочен", zap.String("customer_id", stored.CustomerID))
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.signer.SignAccessToken(userName)
	if err != nil {
		s.metrics.RecordRefresh(outcomeError)
		return nil, fmt.Errorf("[AuthService] ошибка подписи access токена: %w", err)
	}

	tokens := &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	if s.rotateRefreshToken {
		rotated, err := s.IssueRefreshToken(ctx, userName)
		if err != nil {
			s.metrics.RecordRefresh(outcomeError)
			return nil, err
		}
		tokens.RefreshToken = rotated
	}

	s.metrics.RecordRefresh(outcomeSuccess)
	return tokens, nil
}

// Logout отзывает refresh токен пользователя. Повторный вызов не ошибка
func (s *AuthenticationService) Logout(ctx context.Context, userName string) error {
	if err := s.refreshTokens.DeleteByUserName(ctx, userName); err != nil {
		return fmt.Errorf("[AuthService] не удалось отозвать refresh токен: %w", err)
	}
	return nil
}
