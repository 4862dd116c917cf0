package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	v1 "github.com/kure690/GuardianDeployment-sub000/internal/handler/http/v1"
	"github.com/kure690/GuardianDeployment-sub000/internal/metrics"
	"github.com/kure690/GuardianDeployment-sub000/internal/repository"
	"github.com/kure690/GuardianDeployment-sub000/internal/service"
	"github.com/kure690/GuardianDeployment-sub000/internal/webhook"
	"github.com/kure690/GuardianDeployment-sub000/pkg/logger"
	"github.com/kure690/GuardianDeployment-sub000/pkg/postgres"
	redisclient "github.com/kure690/GuardianDeployment-sub000/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/kure690/GuardianDeployment-sub000/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Guardian Console API
// @version 1.0
// @description Local API of the Guardian dispatch console: incident hand-off, calls and presence.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "guardian-console",
		Short:         "Dispatch console coordination agent",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Connect to the coordinator and serve the local API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(logLevel)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(logLevel)
			if err != nil {
				return err
			}
			return runMigrations(cfg, log)
		},
	})

	return cmd
}

// setup загружает конфигурацию и создает логгер; флаг имеет приоритет над LOG_LEVEL
func setup(logLevel string) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, logger.New(cfg.LogLevel), nil
}

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newTransport выбирает транспорт канала координации по конфигурации
func newTransport(cfg *config.Config) channel.Transport {
	if cfg.ChannelTransport == config.TransportNATS {
		return channel.NewNATSTransport(channel.NATSConfig{
			URL:           cfg.NATSURL,
			SubjectPrefix: cfg.NATSSubjectPrefix,
			ClientID:      cfg.ConsoleID,
			Name:          "guardian-console:" + cfg.ConsoleID,
			Token:         cfg.ChannelToken,
		})
	}
	return channel.NewWebsocketTransport(cfg.ChannelURL, cfg.ChannelToken)
}

func serve(logLevel string) error {
	cfg, log, err := setup(logLevel)
	if err != nil {
		return err
	}

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Доставка сообщений о передаче инцидента
	handoffPublisher := webhook.NewRedisHandoffPublisher(redisClient)
	webhook.NewWorker(redisClient, log, cfg).Start(ctx)

	// Инициализация репозиториев и сервисов
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	incidentService := service.NewIncidentService(incidentRepo, log)

	m := metrics.New(prometheus.DefaultRegisterer)

	console, err := service.NewConsoleService(cfg, newTransport(cfg), service.ConsoleDeps{
		Incidents: incidentService,
		Directory: repository.NewOpCenDirectory(redisClient),
		Poster:    handoffPublisher,
		Metrics:   m,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create console service: %w", err)
	}

	log.WithFields(logrus.Fields{"role": cfg.Role, "console_id": cfg.ConsoleID, "transport": cfg.ChannelTransport}).
		Info("Console session started")

	// Инициализация хэндлеров
	handler := v1.NewHandler(console, incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Канал координации переподключается бесконечно, пока жив gctx
	g.Go(func() error {
		if err := console.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("coordination channel stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server forced to shutdown")
		}
		console.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}
