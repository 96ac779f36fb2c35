package config

import (
	"fmt"
	"time"
)

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	ReferenceTTL string `yaml:"reference_ttl"`
}

// JWTConfig : параметры подписи access токенов и жизненного цикла refresh токенов.
// RefreshTokenTTL пустой: refresh токен не истекает сам по себе.
type JWTConfig struct {
	SecretKey          string `yaml:"secret_key"`
	Issuer             string `yaml:"issuer"`
	AccessTokenTTL     string `yaml:"access_token_ttl"`
	RefreshTokenTTL    string `yaml:"refresh_token_ttl"`
	RotateRefreshToken bool   `yaml:"rotate_refresh_token"`
}

// AuthConfig : TrustProxyHeaders включают только за своим reverse proxy,
// иначе клиент сам выбирает адрес, по которому считается лимит входа
type AuthConfig struct {
	BcryptCost         int     `yaml:"bcrypt_cost"`
	LoginRatePerMinute float64 `yaml:"login_rate_per_minute"`
	LoginBurst         int     `yaml:"login_burst"`
	TrustProxyHeaders  bool    `yaml:"trust_proxy_headers"`
}

// AccountConfig : InstitutionCode: фиксированный префикс номера счёта банка
type AccountConfig struct {
	InstitutionCode  string `yaml:"institution_code"`
	CollisionRetries int    `yaml:"collision_retries"`
}

type LoggerConfig struct {
	Level   string `yaml:"level"`
	DevMode bool   `yaml:"dev_mode"`
}

func (c JWTConfig) AccessTTL() (time.Duration, error) {
	return parseDuration("jwt.access_token_ttl", c.AccessTokenTTL)
}

// RefreshTTL возвращает 0, если срок жизни refresh токена не задан
func (c JWTConfig) RefreshTTL() (time.Duration, error) {
	if c.RefreshTokenTTL == "" {
		return 0, nil
	}
	return parseDuration("jwt.refresh_token_ttl", c.RefreshTokenTTL)
}

func (c RedisConfig) ReferenceCacheTTL() (time.Duration, error) {
	return parseDuration("redis.reference_ttl", c.ReferenceTTL)
}

func parseDuration(name, value string) (time.Duration, error) {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("некорректное значение %s %q: %w", name, value, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("значение %s не может быть отрицательным", name)
	}
	return duration, nil
}
