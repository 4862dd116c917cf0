package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
)

// NewPostgresDB создает новый пул соединений PostgreSQL для хранилища инцидентов
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	// Консоль одного оператора: небольшой пул
	cfgPool.MaxConns = 4
	cfgPool.MaxConnIdleTime = 5 * time.Minute
	cfgPool.ConnConfig.RuntimeParams["application_name"] = "guardian-console:" + appCfg.ConsoleID

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
