package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
)

const refreshTokenBytes = 32

var randomSource io.Reader = rand.Reader

// GenerateRefreshToken : 32 случайных байта в base64
func GenerateRefreshToken() (string, error) {
	tokenBytes := make([]byte, refreshTokenBytes)
	if _, err := io.ReadFull(randomSource, tokenBytes); err != nil {
		return "", fmt.Errorf("ошибка генерации рефреш токена: %w", err)
	}
	return base64.StdEncoding.EncodeToString(tokenBytes), nil
}

func RefreshTokensEqual(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
