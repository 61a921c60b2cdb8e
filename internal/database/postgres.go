package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pgxpoolParseConfig   = pgxpool.ParseConfig
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
)

// PoolOptions 連線池設定；StatementTimeout 會套用到每條連線
type PoolOptions struct {
	StatementTimeout time.Duration
	MaxConns         int32
}

// NewPgxPool 建立 pgx 連線池
func NewPgxPool(ctx context.Context, url string, opts PoolOptions) (DB, error) {
	cfg, err := pgxpoolParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	if opts.StatementTimeout > 0 {
		cfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(opts.StatementTimeout.Milliseconds(), 10)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}
