package database

import (
	"context"
	"fmt"
)

// Scanner is satisfied by both a single row and a row cursor.
type Scanner interface {
	Scan(dest ...any) error
}

// Rows is a forward-only cursor over a result set.
type Rows interface {
	Scanner
	Next() bool
	Err() error
	Close() error
}

// Conn is one open database connection. Statements use "?" placeholders;
// each implementation rebinds them for its driver. Every statement is
// committed on its own (autocommit).
type Conn interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) Scanner
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connector opens a fresh connection for a single unit of work.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// NewConnector picks the connector matching cfg.Driver.
func NewConnector(cfg *DBConfig) (Connector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return NewPgxConnector(cfg), nil
	case DriverPQ:
		return NewSQLXConnector("postgres", cfg.PostgresURL(), cfg.ConnectTimeout), nil
	case DriverMySQL:
		return NewSQLXConnector("mysql", cfg.MySQLDSN(), cfg.ConnectTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
