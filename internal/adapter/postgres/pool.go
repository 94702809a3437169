// Package postgres holds the shared PostgreSQL plumbing used by the
// per-entity repositories: pool construction, the transaction-in-context
// pattern, error mapping, the SQL builder and schema migrations.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/fastslide-backend/internal/config"
)

const applicationName = "fastslide-backend"

// NewPool opens the pool and pings it, so a bad DSN fails at startup rather
// than on the first request.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

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

// RegisterPoolMetrics exposes pool occupancy gauges on reg.
func RegisterPoolMetrics(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := map[string]func(*pgxpool.Stat) float64{
		"acquired_conns": func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) },
		"idle_conns":     func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) },
		"total_conns":    func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) },
		"max_conns":      func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) },
	}
	for name, read := range gauges {
		g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "fastslide",
			Subsystem: "db_pool",
			Name:      name,
			Help:      "pgx pool " + name,
		}, func() float64 { return read(pool.Stat()) })
		if err := reg.Register(g); err != nil {
			return fmt.Errorf("register pool gauge %s: %w", name, err)
		}
	}
	return nil
}
