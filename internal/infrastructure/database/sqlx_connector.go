package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// SQLXConnector opens a database/sql handle through sqlx for every unit of work.
// The handle is capped at a single connection and closed afterwards, so nothing
// is pooled across operations.
type SQLXConnector struct {
	driverName     string
	bindType       int
	dsn            string
	connectTimeout time.Duration
}

func NewSQLXConnector(driverName, dsn string, connectTimeout time.Duration) *SQLXConnector {
	return &SQLXConnector{
		driverName:     driverName,
		bindType:       sqlx.BindType(driverName),
		dsn:            dsn,
		connectTimeout: connectTimeout,
	}
}

func (c *SQLXConnector) Connect(ctx context.Context) (Conn, error) {
	connectCtx := ctx
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	db, err := sqlx.Open(c.driverName, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s handle: %w", c.driverName, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return &sqlxConn{db: db, bindType: c.bindType}, nil
}

type sqlxConn struct {
	db       *sqlx.DB
	bindType int
}

func (s *sqlxConn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := s.db.ExecContext(ctx, rebind(s.bindType, query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *sqlxConn) QueryRow(ctx context.Context, query string, args ...any) Scanner {
	return s.db.QueryRowContext(ctx, rebind(s.bindType, query), args...)
}

func (s *sqlxConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, rebind(s.bindType, query), args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *sqlxConn) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxConn) Close(_ context.Context) error {
	return s.db.Close()
}
