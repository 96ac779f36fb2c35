package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerAddr      = ":8080"
	defaultIssuer          = "customer-onboarding"
	defaultAccessTokenTTL  = "1m"
	defaultReferenceTTL    = "10m"
	defaultInstitutionCode = "24"
	defaultLoginRate       = 30
	defaultLoginBurst      = 10

	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	JWT            JWTConfig      `yaml:"jwt"`
	Auth           AuthConfig     `yaml:"auth"`
	Account        AccountConfig  `yaml:"account"`
	Logger         LoggerConfig   `yaml:"logger"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults : заполняет незаданные поля значениями по умолчанию
func (c *AppConfig) ApplyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = defaultServerAddr
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = defaultIssuer
	}
	if c.JWT.AccessTokenTTL == "" {
		c.JWT.AccessTokenTTL = defaultAccessTokenTTL
	}
	if c.RedisConfig.ReferenceTTL == "" {
		c.RedisConfig.ReferenceTTL = defaultReferenceTTL
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if c.Auth.LoginRatePerMinute == 0 {
		c.Auth.LoginRatePerMinute = defaultLoginRate
	}
	if c.Auth.LoginBurst == 0 {
		c.Auth.LoginBurst = defaultLoginBurst
	}
	if c.Account.InstitutionCode == "" {
		c.Account.InstitutionCode = defaultInstitutionCode
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
}

// Validate : ошибки конфигурации фатальны, сервис с ними не стартует
func (c *AppConfig) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("не задан jwt.secret_key")
	}
	if _, err := c.JWT.AccessTTL(); err != nil {
		return err
	}
	if _, err := c.JWT.RefreshTTL(); err != nil {
		return err
	}
	if _, err := c.RedisConfig.ReferenceCacheTTL(); err != nil {
		return err
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost должен быть в диапазоне [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	for _, r := range c.Account.InstitutionCode {
		if r < '0' || r > '9' {
			return fmt.Errorf("account.institution_code должен состоять из цифр: %q", c.Account.InstitutionCode)
		}
	}
	if c.Account.CollisionRetries < 0 {
		return errors.New("account.collision_retries не может быть отрицательным")
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
