package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/contact-site/api/internal/config"
)

// ErrConnection is returned when the pool cannot be built or cannot hand out a connection.
var ErrConnection = errors.New("database connection unavailable")

var errManagerClosed = errors.New("connection pool manager closed")

// Conn is a pooled connection checked out for the duration of one operation.
// Callers must Release it on every exit path.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Release()
}

// Acquirer hands out pooled connections.
type Acquirer interface {
	Acquire(ctx context.Context) (Conn, error)
}

var _ Conn = (*pgxpool.Conn)(nil)
var _ Acquirer = (*Manager)(nil)

// Manager owns the single process-wide pool. The pool is built on first use
// and reused until Close.
type Manager struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger

	once sync.Once
	pool *pgxpool.Pool
	err  error
}

// NewManager prepares a manager; no connection is attempted until first use.
func NewManager(cfg config.DatabaseConfig, logger *slog.Logger) *Manager {
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = config.DefaultAcquireTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{cfg: cfg, logger: logger}
}

// Pool returns the shared pool, constructing it on the first call.
func (m *Manager) Pool() (*pgxpool.Pool, error) {
	m.once.Do(func() {
		poolCfg, err := newPoolConfig(m.cfg, m.logger)
		if err != nil {
			m.err = err
			return
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			m.err = fmt.Errorf("create pgx pool: %w", err)
			return
		}
		m.pool = pool
		m.logger.Info("database connection pool created",
			"max_conns", poolCfg.MaxConns,
			"idle_timeout", poolCfg.MaxConnIdleTime.String(),
			"acquire_timeout", m.cfg.AcquireTimeout.String(),
		)
	})
	return m.pool, m.err
}

// Acquire checks a connection out of the pool. Waiting is bounded by the
// configured acquisition timeout; the connection itself runs with ctx.
func (m *Manager) Acquire(ctx context.Context) (Conn, error) {
	pool, err := m.Pool()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	acquireCtx, cancel := context.WithTimeout(ctx, m.cfg.AcquireTimeout)
	defer cancel()

	conn, err := pool.Acquire(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire connection: %w", ErrConnection, err)
	}
	return conn, nil
}

// Close drains the pool. A manager that never built its pool is simply
// marked closed.
func (m *Manager) Close() {
	m.once.Do(func() {
		m.err = errManagerClosed
	})
	if m.pool != nil {
		m.pool.Close()
		m.logger.Info("database connection pool closed")
	}
}
