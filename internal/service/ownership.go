package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/ports"
)

// authorizeCustomer сверяет клиента из access токена с customerID запроса.
// Логин, которого больше нет в БД, тоже model.ErrForbidden
func authorizeCustomer(ctx context.Context, customers ports.CustomerRepository, userName, customerID string) error {
	customer, err := customers.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrForbidden
		}
		return fmt.Errorf("[Ownership] не удалось найти клиента по логину: %w", err)
	}
	if !strings.EqualFold(customer.CustomerID, customerID) {
		return model.ErrForbidden
	}
	return nil
}
