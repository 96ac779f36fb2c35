package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"customer-onboarding/config"
	"customer-onboarding/internal/model"
	"customer-onboarding/internal/util"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : кэш справочных данных в Redis.
// Промах возвращает nil, nil
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) GetBranch(ctx context.Context, branchName string) (*model.Branch, error) {
	var branch model.Branch
	found, err := r.get(ctx, branchKey(branchName), &branch)
	if err != nil || !found {
		return nil, err
	}
	return &branch, nil
}

func (r *CacheRepository) SetBranch(ctx context.Context, branch *model.Branch) error {
	return r.set(ctx, branchKey(branch.BranchName), branch)
}

func (r *CacheRepository) GetAccountType(ctx context.Context, accountTypeName string) (*model.AccountType, error) {
	var accountType model.AccountType
	found, err := r.get(ctx, accountTypeKey(accountTypeName), &accountType)
	if err != nil || !found {
		return nil, err
	}
	return &accountType, nil
}

func (r *CacheRepository) SetAccountType(ctx context.Context, accountType *model.AccountType) error {
	return r.set(ctx, accountTypeKey(accountType.AccountTypeName), accountType)
}

func (r *CacheRepository) get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil // нет в кэше
	} else if err != nil {
		return false, util.LogError("ошибка получения справочника из Redis", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, util.LogError("ошибка десериализации справочника из кэша", err)
	}
	return true, nil
}

func (r *CacheRepository) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return util.LogError("ошибка сериализации справочника", err)
	}

	cmd := r.client.Client.Set(ctx, key, data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func branchKey(name string) string {
	return fmt.Sprintf("branch:%s", name)
}

func accountTypeKey(name string) string {
	return fmt.Sprintf("account_type:%s", name)
}
