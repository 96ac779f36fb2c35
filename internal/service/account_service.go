package service

import (
	"context"
	"errors"
	"fmt"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService struct {
	customers        ports.CustomerRepository
	accounts         ports.AccountRepository
	synthesizer      ports.AccountNumberSynthesizer
	metrics          ports.MetricsRecorder
	logger           *zap.Logger
	collisionRetries int
}

// NewAccountService : collisionRetries задаёт число повторных генераций номера при совпадении (0 без повторов)
func NewAccountService(
	customers ports.CustomerRepository,
	accounts ports.AccountRepository,
	synthesizer ports.AccountNumberSynthesizer,
	recorder ports.MetricsRecorder,
	logger *zap.Logger,
	collisionRetries int,
) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		customers:        customers,
		accounts:         accounts,
		synthesizer:      synthesizer,
		metrics:          metricsOrNoop(recorder),
		logger:           logger.Named("accounts"),
		collisionRetries: max(collisionRetries, 0),
	}
}

// OpenAccount проверяет заявку, генерирует номер счёта и сохраняет счёт.
// Счёт открывается только на клиента, которому принадлежит userName
func (s *AccountService) OpenAccount(ctx context.Context, userName string, application model.AccountApplication) (*model.Account, error) {
	income, err := validateAccountApplication(application)
	if err != nil {
		return nil, err
	}
	if err := authorizeCustomer(ctx, s.customers, userName, application.CustomerID); err != nil {
		return nil, err
	}

	account := &model.Account{
		UUID:             uuid.NewString(),
		CustomerID:       application.CustomerID,
		GovernmentID:     application.GovernmentID,
		IDType:           application.IDType,
		AccountType:      application.AccountType,
		BranchName:       application.BranchName,
		AgreedToTerms:    application.AgreedToTerms,
		AgreedToPrivacy:  application.AgreedToPrivacy,
		EmploymentStatus: application.EmploymentStatus,
		OrganisationName: application.OrganisationName,
		Occupation:       application.Occupation,
		AnnualIncome:     income,
	}

	for attempt := 0; ; attempt++ {
		synthesized, err := s.synthesizer.Synthesize(ctx, application.BranchName, application.AccountType)
		if err != nil {
			return nil, fmt.Errorf("[AccountService] не удалось сгенерировать номер счёта: %w", err)
		}
		account.AccountNumber = synthesized.AccountNumber
		account.RoutingCode = synthesized.RoutingCode

		err = s.accounts.Create(ctx, account)
		if err == nil {
			break
		}
		if errors.Is(err, model.ErrAccountNumberTaken) {
			if attempt < s.collisionRetries {
				s.logger.Warn("номер счёта занят, генерируем заново", zap.Int("attempt", attempt+1))
				continue
			}
			return nil, model.ErrAccountNumberTaken
		}
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("[AccountService] ошибка сохранения счёта: %w", err)
	}

	s.metrics.RecordAccountOpened()
	s.logger.Info("счёт открыт",
		zap.String("customer_id", account.CustomerID),
		zap.String("account_id", account.UUID),
	)
	return account, nil
}

// ListAccounts : пустой список не ошибка
func (s *AccountService) ListAccounts(ctx context.Context, userName, customerID string) ([]model.Account, error) {
	if err := validateCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := authorizeCustomer(ctx, s.customers, userName, customerID); err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("[AccountService] не удалось получить счета клиента: %w", err)
	}
	return accounts, nil
}

// UpdateAccount меняет данные заявки по счёту. Номер счёта не перегенерируется
func (s *AccountService) UpdateAccount(ctx context.Context, userName string, update model.AccountUpdate) (*model.Account, error) {
	income, err := validateAccountUpdate(update)
	if err != nil {
		return nil, err
	}
	if err := authorizeCustomer(ctx, s.customers, userName, update.CustomerID); err != nil {
		return nil, err
	}

	account := &model.Account{
		UUID:             update.AccountID,
		CustomerID:       update.CustomerID,
		GovernmentID:     update.GovernmentID,
		IDType:           update.IDType,
		AccountType:      update.AccountType,
		EmploymentStatus: update.EmploymentStatus,
		OrganisationName: update.OrganisationName,
		Occupation:       update.Occupation,
		AnnualIncome:     income,
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("[AccountService] ошибка обновления счёта: %w", err)
	}

	s.logger.Info("данные счёта обновлены",
		zap.String("customer_id", account.CustomerID),
		zap.String("account_id", account.UUID),
	)
	return account, nil
}
