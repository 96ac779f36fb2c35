package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"customer-onboarding/config"
	"customer-onboarding/internal/model"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository_Branch(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute
	branch := &model.Branch{BranchName: "MainBranch", BranchCode: "001", RoutingCode: "RT001"}
	data, err := json.Marshal(branch)
	require.NoError(t, err)

	t.Run("промах", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewCacheRepository(&config.RedisClient{Client: client}, ttl)

		mock.ExpectGet("branch:MainBranch").RedisNil()

		got, err := repo.GetBranch(ctx, "MainBranch")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("попадание", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewCacheRepository(&config.RedisClient{Client: client}, ttl)

		mock.ExpectGet("branch:MainBranch").SetVal(string(data))

		got, err := repo.GetBranch(ctx, "MainBranch")
		require.NoError(t, err)
		assert.Equal(t, branch, got)
	})

	t.Run("запись с TTL", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewCacheRepository(&config.RedisClient{Client: client}, ttl)

		mock.ExpectSet("branch:MainBranch", data, ttl).SetVal("OK")

		require.NoError(t, repo.SetBranch(ctx, branch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis недоступен", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewCacheRepository(&config.RedisClient{Client: client}, ttl)

		mock.ExpectGet("branch:MainBranch").SetErr(errors.New("connection refused"))

		_, err := repo.GetBranch(ctx, "MainBranch")
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("битые данные в кэше", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewCacheRepository(&config.RedisClient{Client: client}, ttl)

		mock.ExpectGet("branch:MainBranch").SetVal("{not json")

		_, err := repo.GetBranch(ctx, "MainBranch")
		assert.Error(t, err)
	})
}

func TestCacheRepository_AccountType(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute
	accountType := &model.AccountType{AccountTypeName: "Savings", AccountTypeCode: "SV"}
	data, err := json.Marshal(accountType)
	require.NoError(t, err)

	client, mock := redismock.NewClientMock()
	repo := NewCacheRepository(&config.RedisClient{Client: client}, ttl)

	mock.ExpectSet("account_type:Savings", data, ttl).SetVal("OK")
	mock.ExpectGet("account_type:Savings").SetVal(string(data))

	require.NoError(t, repo.SetAccountType(ctx, accountType))
	got, err := repo.GetAccountType(ctx, "Savings")
	require.NoError(t, err)
	assert.Equal(t, accountType, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
