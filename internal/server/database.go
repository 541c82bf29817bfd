package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enerjitakip/fatura-extract/gen/ent"
	"github.com/enerjitakip/fatura-extract/internal/common"
	repo "github.com/enerjitakip/fatura-extract/internal/repository"
)

// ConnectDB establishes a connection to the database and returns the Ent client and connection pool
func ConnectDB(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.DSN,
		MaxConns:         cfg.MaxConns,
		MinConns:         cfg.MinConns,
		MaxConnLifetime:  cfg.MaxConnLifetime,
		MaxConnIdleTime:  cfg.MaxConnIdleTime,
		DialTimeout:      cfg.DialTimeout,
		StatementTimeout: cfg.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, pool, nil
}

// PingDB pings the database to ensure it's responsive
func PingDB(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, timeout time.Duration) error {
	return repo.HealthCheck(ctx, pool, timeout, logger)
}

// CloseDB closes the database connections gracefully
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	repo.Close(entc, pool, logger)
}
