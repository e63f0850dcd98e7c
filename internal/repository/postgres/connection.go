package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"eventboard/internal/domain"

	_ "github.com/lib/pq"
	"golang.org/x/sync/singleflight"
)

// DefaultConnectTimeout bounds a single connection attempt.
const DefaultConnectTimeout = 10 * time.Second

// ErrManagerClosed is returned by Connect once Close has been called.
var ErrManagerClosed = errors.New("connection manager closed")

// Connector hands out the shared connection pool, establishing it on first use.
type Connector interface {
	Connect(ctx context.Context) (*sql.DB, error)
}

// OpenFunc opens and verifies a pool for dsn.
type OpenFunc func(ctx context.Context, dsn string) (*sql.DB, error)

// Manager owns the process-wide connection pool. The pool is opened lazily on
// the first Connect; concurrent first callers share one attempt. Once
// connected, the pool is cached until Close.
type Manager struct {
	dsn     string
	timeout time.Duration
	open    OpenFunc
	logger  *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithOpenFunc replaces the default lib/pq opener.
func WithOpenFunc(fn OpenFunc) Option {
	return func(m *Manager) { m.open = fn }
}

// WithConnectTimeout sets the timeout of one connection attempt.
func WithConnectTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger sets the logger used for connection lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager returns a Manager for dsn. No connection is made until Connect.
func NewManager(dsn string, opts ...Option) *Manager {
	m := &Manager{
		dsn:     dsn,
		timeout: DefaultConnectTimeout,
		open:    openPostgres,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect returns the cached pool, opening it if needed. A missing DSN fails
// immediately with a configuration error. A failed attempt is not cached, so
// a later call retries.
func (m *Manager) Connect(ctx context.Context) (*sql.DB, error) {
	db, closed := m.state()
	if closed {
		return nil, domain.StoreError("connect", ErrManagerClosed)
	}
	if db != nil {
		return db, nil
	}
	if m.dsn == "" {
		return nil, domain.ConfigurationError("DATABASE_URL", "DATABASE_URL is missing")
	}

	ch := m.group.DoChan("connect", func() (any, error) {
		if db := m.cached(); db != nil {
			return db, nil
		}
		// The attempt is shared, so it must not die with the first caller's context.
		attemptCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
		defer cancel()

		db, err := m.open(attemptCtx, m.dsn)
		if err != nil {
			m.logger.Error("database connection failed", "err", err)
			return nil, err
		}
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			// Close ran while the attempt was in flight; nobody will own this pool.
			_ = db.Close()
			return nil, ErrManagerClosed
		}
		m.db = db
		m.mu.Unlock()
		m.logger.Info("connected to database")
		return db, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, domain.StoreError("connect", res.Err)
		}
		return res.Val.(*sql.DB), nil
	case <-ctx.Done():
		return nil, domain.StoreError("connect", ctx.Err())
	}
}

// Close closes the pool if it was opened. It is terminal: later Connect calls
// fail with ErrManagerClosed, and a connect attempt still in flight closes the
// pool it opens instead of caching it.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Manager) cached() *sql.DB {
	db, _ := m.state()
	return db
}

func (m *Manager) state() (*sql.DB, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db, m.closed
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
