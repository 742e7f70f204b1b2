package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"metrics-consolidation-backend/config"
)

const usersTableName = "users"

// NewPostgresPool creates the shared connection pool for the users collection
// and makes sure its table exists. An unreachable database aborts startup.
func NewPostgresPool(lc fx.Lifecycle, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Postgres.DSN)
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse Postgres DSN")
		return nil, fmt.Errorf("invalid Postgres DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create connection pool to Postgres")
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Error().Err(err).Msg("Failed to ping Postgres")
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}
	log.Info().Msg("Postgres connection pool created and verified.")

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSetup()
	if err := ensureUsersTable(setupCtx, pool); err != nil {
		pool.Close()
		log.Error().Err(err).Msg("Failed to ensure users table exists")
		return nil, fmt.Errorf("failed ensuring users table: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing Postgres connection pool...")
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

func ensureUsersTable(ctx context.Context, pool *pgxpool.Pool) error {
	// gen_random_uuid is built in since PG13; the extension covers older servers.
	if _, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS pgcrypto;"); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure pgcrypto extension exists (permission issue?). Trying to proceed...")
	}

	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			doc JSONB NOT NULL DEFAULT '{}'::jsonb
		);`, usersTableName)
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", usersTableName, err)
	}
	log.Info().Str("table", usersTableName).Msg("Ensured users table exists.")
	return nil
}
