package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns          = 20
	healthCheckPeriod = 30 * time.Second
)

// NewPostgresDB создает пул соединений PostgreSQL и проверяет, что установлен PostGIS
func NewPostgresDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	// Параметры из строки подключения имеют приоритет
	if cfgPool.MaxConns < maxConns && !strings.Contains(databaseURL, "pool_max_conns") {
		cfgPool.MaxConns = maxConns
	}
	cfgPool.HealthCheckPeriod = healthCheckPeriod

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Геозоны и отметки хранятся как geography, без PostGIS запросы не работают
	var version string
	if err := dbpool.QueryRow(ctx, "SELECT PostGIS_Version()").Scan(&version); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgis недоступен: %w", err)
	}

	return dbpool, nil
}
