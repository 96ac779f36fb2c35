package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer-onboarding/config"
	_ "customer-onboarding/docs"
	"customer-onboarding/internal/handler"
	"customer-onboarding/internal/metrics"
	"customer-onboarding/internal/repository"
	"customer-onboarding/internal/security"
	"customer-onboarding/internal/service"
	"customer-onboarding/internal/util"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

var configPath string

// @title Customer onboarding
// @version 1.0
// @description REST API регистрации клиентов, выдачи токенов и открытия счетов

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	root := &cobra.Command{
		Use:           "customer-onboarding",
		Short:         "Регистрация клиентов, выдача токенов и открытие счетов",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "путь к файлу конфигурации")
	root.AddCommand(newServeCommand(), newMigrateCommand())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "применить миграции перед запуском")

	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции схемы БД",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
			if err != nil {
				return fmt.Errorf("не удалось подключиться к БД: %w", err)
			}
			defer closeWithLog(logger, "БД", db.Close)

			if err := config.RunMigrations(cmd.Context(), db.DB.DB); err != nil {
				return err
			}
			logger.Info("миграции применены")
			return nil
		},
	}
}

func loadConfig() (*config.AppConfig, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	logger, err := util.NewLogger(cfg.Logger.Level, cfg.Logger.DevMode)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	return cfg, logger, nil
}

func serve(ctx context.Context, migrate bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	defer closeWithLog(logger, "БД", db.Close)

	if migrate {
		if err := config.RunMigrations(ctx, db.DB.DB); err != nil {
			return err
		}
		logger.Info("миграции применены")
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		return fmt.Errorf("ошибка подключения к Redis: %w", err)
	}
	defer closeWithLog(logger, "Redis", redisClient.Close)

	referenceTTL, err := cfg.RedisConfig.ReferenceCacheTTL()
	if err != nil {
		return err
	}
	refreshTTL, err := cfg.JWT.RefreshTTL()
	if err != nil {
		return err
	}

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		return err
	}
	hasher, err := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	userRepo := repository.NewUserRepository(db)
	jwtRepo := repository.NewJWTRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	referenceRepo := repository.NewCachedReferenceRepository(
		repository.NewReferenceRepository(db),
		repository.NewCacheRepository(redisClient, referenceTTL),
		logger,
	)

	authService := service.NewAuthenticationService(userRepo, jwtRepo, jwtService, hasher, collector, logger,
		service.WithRefreshRotation(cfg.JWT.RotateRefreshToken),
		service.WithRefreshTokenTTL(refreshTTL),
	)
	synthesizer := service.NewSynthesizer(referenceRepo, cfg.Account.InstitutionCode, collector, logger)
	accountService := service.NewAccountService(userRepo, accountRepo, synthesizer, collector, logger, cfg.Account.CollisionRetries)
	customerService := service.NewCustomerService(userRepo, profileRepo, logger)

	loginLimiter := security.NewLoginRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst)
	defer loginLimiter.Stop()

	srv, router := config.SetupServer(cfg.ServerAddr)
	handler.RegisterRoutes(router, handler.Routes{
		Users:          handler.NewUserHandler(authService),
		Authentication: handler.NewAuthenticationHandler(authService),
		Accounts:       handler.NewAccountHandler(accountService),
		Profiles:       handler.NewProfileHandler(customerService),
		JWTService:     jwtService,
		LoginLimiter:   loginLimiter,
		Metrics:        metrics.Handler(registry),
		Swagger:        httpSwagger.WrapHandler,

		TrustProxyHeaders: cfg.Auth.TrustProxyHeaders,
	})

	return runServer(ctx, srv, logger)
}

func runServer(ctx context.Context, server *http.Server, logger *zap.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка работы сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("получен сигнал остановки работы сервера")
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}
	logger.Info("сервер успешно остановлен")
	return nil
}

func closeWithLog(logger *zap.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("ошибка при закрытии соединения", zap.String("resource", name), zap.Error(err))
	}
}
