package database

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// ScanFunc builds one record from the current row.
type ScanFunc[T any] func(Scanner) (T, error)

// Executor runs statements, each on a connection acquired for that statement
// alone and released before returning.
type Executor struct {
	connector Connector
}

func NewExecutor(connector Connector) *Executor {
	return &Executor{connector: connector}
}

// WithConn acquires a connection, hands it to fn and always closes it.
func (e *Executor) WithConn(ctx context.Context, fn func(Conn) error) error {
	conn, err := e.connector.Connect(ctx)
	if err != nil {
		err = Classify(err)
		log.Error().Err(err).Msg("[DATABASE] connect failed")
		return err
	}

	defer func() {
		if closeErr := conn.Close(ctx); closeErr != nil {
			log.Warn().Err(closeErr).Msg("[DATABASE] close failed")
		}
	}()

	return fn(conn)
}

// Exec runs a statement without a result set and returns the affected row count.
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64

	err := e.WithConn(ctx, func(conn Conn) error {
		n, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return fail(query, err)
		}
		affected = n
		return nil
	})

	return affected, err
}

// Ping opens a connection and checks it answers.
func (e *Executor) Ping(ctx context.Context) error {
	return e.WithConn(ctx, func(conn Conn) error {
		if err := conn.Ping(ctx); err != nil {
			return fail("PING", err)
		}
		return nil
	})
}

// QueryOne returns the first row of the result, or ErrNotFound.
func QueryOne[T any](ctx context.Context, e *Executor, scan ScanFunc[T], query string, args ...any) (T, error) {
	var result T

	err := e.WithConn(ctx, func(conn Conn) error {
		v, err := scan(conn.QueryRow(ctx, query, args...))
		if err != nil {
			return fail(query, err)
		}
		result = v
		return nil
	})

	return result, err
}

// QueryAll returns every row of the result. An empty result is not an error.
func QueryAll[T any](ctx context.Context, e *Executor, scan ScanFunc[T], query string, args ...any) ([]T, error) {
	var results []T

	err := e.WithConn(ctx, func(conn Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return fail(query, err)
		}
		defer rows.Close()

		for rows.Next() {
			v, err := scan(rows)
			if err != nil {
				return fail(query, err)
			}
			results = append(results, v)
		}

		if err := rows.Err(); err != nil {
			return fail(query, err)
		}
		return nil
	})

	return results, err
}

// fail classifies err and logs it. A missing row is an expected outcome and
// is only logged at debug level.
func fail(query string, err error) error {
	err = Classify(err)

	event := log.Error()
	if errors.Is(err, ErrNotFound) {
		event = log.Debug()
	}
	event.Err(err).Str("query", compact(query)).Msg("[DATABASE] statement failed")

	return err
}

// compact folds a multi-line statement onto one line for logging
func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
