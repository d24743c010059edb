package database

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/pkg/config"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

// Guard owns the lifecycle of the shared connection pool. It opens the pool
// lazily on first Acquire and transparently re-opens it after Shutdown, so
// callers always either get a working handle or a typed error. A failed
// connection attempt is reported immediately; the guard never retries.
type Guard struct {
	mu     sync.Mutex
	cfg    config.DatabaseConfig
	db     *sqlx.DB
	logger *zap.Logger
}

// NewGuard constructs a guard around the configured store.
func NewGuard(cfg config.DatabaseConfig, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{cfg: cfg, logger: logger}
}

// Acquire returns a working pool handle, creating the pool if necessary.
func (g *Guard) Acquire() (*sqlx.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return g.db, nil
	}

	dsn := g.cfg.DSN()
	if dsn == "" {
		return nil, appErrors.Clone(appErrors.ErrConfiguration, "no database connection string configured")
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConnectivity.Code, appErrors.ErrConnectivity.Status, humanize(err))
	}

	if g.cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(g.cfg.MaxOpenConns)
	}
	if g.cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(g.cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	timeout := g.cfg.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.Wrap(err, appErrors.ErrConnectivity.Code, appErrors.ErrConnectivity.Status, humanize(err))
	}

	g.db = db
	g.logger.Info("database pool created", zap.String("host", g.cfg.Host), zap.String("dbname", g.cfg.Name))
	return g.db, nil
}

// Ping checks reachability of the store through a fresh or existing handle.
func (g *Guard) Ping(ctx context.Context) error {
	db, err := g.Acquire()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrConnectivity.Code, appErrors.ErrConnectivity.Status, humanize(err))
	}
	return nil
}

// Shutdown closes the pool. A later Acquire re-creates it from the same
// configuration.
func (g *Guard) Shutdown() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	g.logger.Info("database pool closed")
	return err
}

// humanize maps common driver failures onto operator-friendly messages.
func humanize(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "28P01":
			return "database rejected the configured credentials"
		case "3D000":
			return "database does not exist"
		}
		return "database error: " + pqErr.Message
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "database host not found"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "database connection refused or unreachable"
	}

	if strings.Contains(err.Error(), "connection refused") {
		return "database connection refused or unreachable"
	}

	return "database is unreachable"
}
