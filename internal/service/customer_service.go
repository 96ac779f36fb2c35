package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService : анкета клиента (персональные данные)
type CustomerService struct {
	customers ports.CustomerRepository
	profiles  ports.ProfileRepository
	logger    *zap.Logger
	now       func() time.Time
}

type CustomerOption func(*CustomerService)

func WithCustomerClock(now func() time.Time) CustomerOption {
	return func(s *CustomerService) {
		s.now = now
	}
}

func NewCustomerService(
	customers ports.CustomerRepository,
	profiles ports.ProfileRepository,
	logger *zap.Logger,
	opts ...CustomerOption,
) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CustomerService{
		customers: customers,
		profiles:  profiles,
		logger:    logger.Named("customers"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProfile сохраняет анкету. Вторая анкета того же клиента: model.ErrProfileExists
func (s *CustomerService) AddProfile(ctx context.Context, userName string, details model.ProfileDetails) (*model.Profile, error) {
	profile, err := s.prepareProfile(ctx, userName, details)
	if err != nil {
		return nil, err
	}
	profile.UUID = uuid.NewString()

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, model.ErrProfileExists) || errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("[CustomerService] ошибка сохранения анкеты: %w", err)
	}

	s.logger.Info("анкета клиента добавлена", zap.String("customer_id", profile.CustomerID))
	return profile, nil
}

func (s *CustomerService) GetProfile(ctx context.Context, userName, customerID string) (*model.Profile, error) {
	if err := validateCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := authorizeCustomer(ctx, s.customers, userName, customerID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("[CustomerService] не удалось получить анкету: %w", err)
	}
	return profile, nil
}

// UpdateProfile перезаписывает анкету. Анкеты ещё нет: model.ErrNotFound
func (s *CustomerService) UpdateProfile(ctx context.Context, userName string, details model.ProfileDetails) (*model.Profile, error) {
	profile, err := s.prepareProfile(ctx, userName, details)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("[CustomerService] ошибка обновления анкеты: %w", err)
	}

	s.logger.Info("анкета клиента обновлена", zap.String("customer_id", profile.CustomerID))
	return profile, nil
}

func (s *CustomerService) prepareProfile(ctx context.Context, userName string, details model.ProfileDetails) (*model.Profile, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	dateOfBirth, err := validateProfile(details, today)
	if err != nil {
		return nil, err
	}
	if err := authorizeCustomer(ctx, s.customers, userName, details.CustomerID); err != nil {
		return nil, err
	}

	return &model.Profile{
		CustomerID:   details.CustomerID,
		Name:         details.Name,
		FatherName:   details.FatherName,
		Gender:       details.Gender,
		Nationality:  details.Nationality,
		DateOfBirth:  dateOfBirth,
		Address:      details.Address,
		PlaceOfBirth: details.PlaceOfBirth,
		PhoneNumber:  details.PhoneNumber,
		EmailAddress: details.EmailAddress,
	}, nil
}
