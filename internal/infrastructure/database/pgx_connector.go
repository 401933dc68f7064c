package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
)

// PgxConnector dials PostgreSQL with pgx for every unit of work.
type PgxConnector struct {
	cfg *DBConfig
}

func NewPgxConnector(cfg *DBConfig) *PgxConnector {
	return &PgxConnector{cfg: cfg}
}

func (c *PgxConnector) Connect(ctx context.Context) (Conn, error) {
	connConfig, err := pgx.ParseConfig(c.cfg.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if c.cfg.ConnectTimeout > 0 {
		connConfig.ConnectTimeout = c.cfg.ConnectTimeout
	}

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return &pgxConn{conn: conn}, nil
}

type pgxConn struct {
	conn *pgx.Conn
}

func (p *pgxConn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := p.conn.Exec(ctx, rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p *pgxConn) QueryRow(ctx context.Context, query string, args ...any) Scanner {
	return p.conn.QueryRow(ctx, rebind(sqlx.DOLLAR, query), args...)
}

func (p *pgxConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := p.conn.Query(ctx, rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		return nil, err
	}
	return &pgxRows{rows: rows}, nil
}

func (p *pgxConn) Ping(ctx context.Context) error {
	return p.conn.Ping(ctx)
}

func (p *pgxConn) Close(ctx context.Context) error {
	return p.conn.Close(ctx)
}

// pgxRows adapts pgx.Rows, whose Close has no error result.
type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool             { return r.rows.Next() }
func (r *pgxRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *pgxRows) Err() error             { return r.rows.Err() }

func (r *pgxRows) Close() error {
	r.rows.Close()
	return nil
}
