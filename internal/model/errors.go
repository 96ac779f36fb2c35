package model

import "errors"

var (
	// ErrInvalidCredentials : одна ошибка и для неизвестного логина, и для неверного пароля,
	// и для неподходящего refresh токена
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username already exists")
	// ErrUserNotFound : нарушение согласованности после успешной аутентификации, ошибка сервера
	ErrUserNotFound       = errors.New("customer not found")
	ErrSigning            = errors.New("access token signing failed")
	ErrAccountNumberTaken = errors.New("account number already taken")
	// ErrNotFound : запись отсутствует в хранилище
	ErrNotFound = errors.New("record not found")
	// ErrForbidden : клиент из access токена не владеет запрошенными данными
	ErrForbidden     = errors.New("access to customer data denied")
	ErrProfileExists = errors.New("customer details already exist")
)

// ValidationError : первое нарушенное правило валидации
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
