package repository

import (
	"context"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/ports"

	"go.uber.org/zap"
)

// CachedReferenceRepository читает справочники сначала из Redis, затем из Postgres.
// Отсутствующие записи не кэшируются. Сбой Redis не мешает чтению из БД
type CachedReferenceRepository struct {
	store  ports.ReferenceRepository
	cache  ports.ReferenceCache
	logger *zap.Logger
}

func NewCachedReferenceRepository(store ports.ReferenceRepository, cache ports.ReferenceCache, logger *zap.Logger) *CachedReferenceRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedReferenceRepository{
		store:  store,
		cache:  cache,
		logger: logger.Named("reference_cache"),
	}
}

func (r *CachedReferenceRepository) FindBranch(ctx context.Context, branchName string) (*model.Branch, error) {
	cached, err := r.cache.GetBranch(ctx, branchName)
	if err != nil {
		r.logger.Warn("кэш недоступен, читаем отделение из БД", zap.String("branch", branchName), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	branch, err := r.store.FindBranch(ctx, branchName)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetBranch(ctx, branch); err != nil {
		r.logger.Warn("не удалось закэшировать отделение", zap.String("branch", branchName), zap.Error(err))
	}
	return branch, nil
}

func (r *CachedReferenceRepository) FindAccountType(ctx context.Context, accountTypeName string) (*model.AccountType, error) {
	cached, err := r.cache.GetAccountType(ctx, accountTypeName)
	if err != nil {
		r.logger.Warn("кэш недоступен, читаем тип счёта из БД", zap.String("account_type", accountTypeName), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	accountType, err := r.store.FindAccountType(ctx, accountTypeName)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetAccountType(ctx, accountType); err != nil {
		r.logger.Warn("не удалось закэшировать тип счёта", zap.String("account_type", accountTypeName), zap.Error(err))
	}
	return accountType, nil
}
