package model

import "time"

// RefreshToken : у каждого пользователя не больше одной живой записи
type RefreshToken struct {
	UUID       string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	UserName   string    `db:"user_name"`
	Token      string    `db:"token"`
	CreatedAt  time.Time `db:"created_at"`
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (для получения нового access токена)
	// example: vcSi0369y1I62wOpxZFpgZ...
	RefreshToken string `json:"refreshToken"`
}

type LoginResult struct {
	TokensPair
	CustomerID string `json:"customerId"`
}
