package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okoshkin/lifelog-backend/internal/config"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// NewPool opens a pgx connection pool using the settings from
// config.DatabaseConfig and verifies connectivity with a ping so that a bad
// DSN fails at startup rather than on the first query.
//
// On every checkout the pool publishes the acting user from the request
// context as the app.user_id setting, which drives the row-level security
// policies on the owned tables. Anonymous contexts clear the setting, so a
// stale value never leaks from a previous checkout of the same connection.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.BeforeAcquire = setActingUser

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func setActingUser(ctx context.Context, conn *pgx.Conn) bool {
	actingUser := ""
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		actingUser = userID.String()
	}
	// Session-level so the value survives for the whole checkout, including
	// transactions begun on this connection.
	_, err := conn.Exec(ctx, `SELECT set_config('app.user_id', $1, false)`, actingUser)
	return err == nil
}
