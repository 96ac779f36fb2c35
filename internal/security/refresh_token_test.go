package security

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerateRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateRefreshToken_RandomFailure(t *testing.T) {
	original := randomSource
	t.Cleanup(func() { randomSource = original })
	randomSource = failingReader{}

	_, err := GenerateRefreshToken()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestRefreshTokensEqual(t *testing.T) {
	assert.True(t, RefreshTokensEqual("abc", "abc"))
	assert.False(t, RefreshTokensEqual("abc", "abd"))
	assert.False(t, RefreshTokensEqual("abc", "abcd"))
	assert.False(t, RefreshTokensEqual("abc", ""))
}
