package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Verify(hash, "Secret123"))
	assert.False(t, hasher.Verify(hash, "WrongPass"))
	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "Secret123"))
	assert.False(t, hasher.VerifyAbsent("Secret123"))
}

func TestPasswordHasher_SaltedHashes(t *testing.T) {
	hasher, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestPasswordHasher_DummyFollowsStoredCost(t *testing.T) {
	hasher, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, hasher.dummyCost())

	// хэш, созданный при прежней, более высокой стоимости
	legacy, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost+1)
	require.NoError(t, err)

	assert.True(t, hasher.Verify(string(legacy), "Secret123"))
	assert.Equal(t, bcrypt.MinCost+1, hasher.dummyCost())

	assert.False(t, hasher.VerifyAbsent("Secret123"))
	dummy, err := hasher.dummyHash(hasher.dummyCost())
	require.NoError(t, err)
	cost, err := bcrypt.Cost(dummy)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	// повреждённый хэш не меняет стоимость фиктивного
	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "Secret123"))
	assert.Equal(t, bcrypt.MinCost+1, hasher.dummyCost())
}
