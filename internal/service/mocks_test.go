package service_test

import (
	"context"
	"sync"
	"time"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/security"

	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByUserName(ctx context.Context, userName string) (*model.Customer, error) {
	args := m.Called(ctx, userName)
	if c, ok := args.Get(0).(*model.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) FindByUserName(ctx context.Context, userName string) (*model.RefreshToken, error) {
	args := m.Called(ctx, userName)
	if token, ok := args.Get(0).(*model.RefreshToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) ReplaceRefreshToken(ctx context.Context, userName string, token string) (*model.RefreshToken, error) {
	args := m.Called(ctx, userName, token)
	if record, ok := args.Get(0).(*model.RefreshToken); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByUserName(ctx context.Context, userName string) error {
	return m.Called(ctx, userName).Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) SignAccessToken(userName string) (string, error) {
	args := m.Called(userName)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) ParseAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, password string) bool {
	return m.Called(hash, password).Bool(0)
}

func (m *MockPasswordHasher) VerifyAbsent(password string) bool {
	return m.Called(password).Bool(0)
}

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) FindBranch(ctx context.Context, branchName string) (*model.Branch, error) {
	args := m.Called(ctx, branchName)
	if branch, ok := args.Get(0).(*model.Branch); ok {
		return branch, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReferenceRepository) FindAccountType(ctx context.Context, accountTypeName string) (*model.AccountType, error) {
	args := m.Called(ctx, accountTypeName)
	if accountType, ok := args.Get(0).(*model.AccountType); ok {
		return accountType, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) ListByCustomerID(ctx context.Context, customerID string) ([]model.Account, error) {
	args := m.Called(ctx, customerID)
	if accounts, ok := args.Get(0).([]model.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *model.Account) error {
	return m.Called(ctx, account).Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) FindByCustomerID(ctx context.Context, customerID string) (*model.Profile, error) {
	args := m.Called(ctx, customerID)
	if profile, ok := args.Get(0).(*model.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, branchName, accountTypeName string) (*model.SynthesizedAccount, error) {
	args := m.Called(ctx, branchName, accountTypeName)
	if synthesized, ok := args.Get(0).(*model.SynthesizedAccount); ok {
		return synthesized, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordRegistration(outcome string) { m.Called(outcome) }
func (m *MockMetrics) RecordLogin(outcome string)        { m.Called(outcome) }
func (m *MockMetrics) RecordRefresh(outcome string)      { m.Called(outcome) }
func (m *MockMetrics) RecordAccountOpened()              { m.Called() }
func (m *MockMetrics) RecordReferenceMiss(kind string)   { m.Called(kind) }

// ===== IN-MEMORY STORE =====

// memoryCustomers и memoryTokens ведут себя как Postgres репозитории: уникальный логин,
// не больше одного refresh токена на пользователя
type memoryCustomers struct {
	mu        sync.Mutex
	customers map[string]model.Customer
}

func newMemoryCustomers() *memoryCustomers {
	return &memoryCustomers{customers: make(map[string]model.Customer)}
}

func (s *memoryCustomers) FindByUserName(_ context.Context, userName string) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[userName]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &customer, nil
}

func (s *memoryCustomers) CreateCustomer(_ context.Context, customer *model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[customer.UserName]; ok {
		return model.ErrDuplicateUser
	}
	s.customers[customer.UserName] = *customer
	return nil
}

// ownedBy : хранилище с одним клиентом userName -> customerID
func ownedBy(userName, customerID string) *memoryCustomers {
	store := newMemoryCustomers()
	store.customers[userName] = model.Customer{CustomerID: customerID, UserName: userName}
	return store
}

func (s *memoryCustomers) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

type memoryTokens struct {
	mu        sync.Mutex
	customers *memoryCustomers
	tokens    map[string]model.RefreshToken
	now       func() time.Time
}

func newMemoryTokens(customers *memoryCustomers, now func() time.Time) *memoryTokens {
	return &memoryTokens{customers: customers, tokens: make(map[string]model.RefreshToken), now: now}
}

func (s *memoryTokens) FindByUserName(_ context.Context, userName string) (*model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[userName]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &token, nil
}

func (s *memoryTokens) ReplaceRefreshToken(ctx context.Context, userName string, token string) (*model.RefreshToken, error) {
	customer, err := s.customers.FindByUserName(ctx, userName)
	if err != nil {
		return nil, model.ErrUserNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record := model.RefreshToken{
		UUID:       userName,
		CustomerID: customer.CustomerID,
		UserName:   userName,
		Token:      token,
		CreatedAt:  s.now(),
	}
	s.tokens[userName] = record
	return &record, nil
}

func (s *memoryTokens) DeleteByUserName(_ context.Context, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userName)
	return nil
}
