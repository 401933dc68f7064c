// Package databasetest provides a scriptable in-memory Connector for repository tests.
package databasetest

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sync"

	"library-manager/internal/infrastructure/database"
)

// Call is one statement seen by the fake.
type Call struct {
	Query string
	Args  []any
}

// Result scripts the outcome of one statement.
// Rows is used by QueryRow (first row only) and Query; RowsAffected by Exec.
type Result struct {
	RowsAffected int64
	Rows         [][]any
	Err          error
}

// Connector records statements and replays scripted results in order.
type Connector struct {
	mu         sync.Mutex
	results    []Result
	calls      []Call
	opened     int
	closed     int
	ConnectErr error
}

func NewConnector(results ...Result) *Connector {
	return &Connector{results: results}
}

// Push appends scripted results.
func (c *Connector) Push(results ...Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, results...)
}

func (c *Connector) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// Opened and Closed count connections; they are equal when nothing leaked.
func (c *Connector) Opened() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened
}

func (c *Connector) Closed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Connector) Connect(_ context.Context) (database.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ConnectErr != nil {
		return nil, c.ConnectErr
	}
	c.opened++
	return &conn{parent: c}, nil
}

func (c *Connector) next(query string, args []any) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Query: query, Args: args})
	if len(c.results) == 0 {
		return Result{Err: fmt.Errorf("databasetest: no scripted result for %q", query)}
	}
	r := c.results[0]
	c.results = c.results[1:]
	return r
}

type conn struct {
	parent *Connector
}

func (c *conn) Exec(_ context.Context, query string, args ...any) (int64, error) {
	r := c.parent.next(query, args)
	return r.RowsAffected, r.Err
}

func (c *conn) QueryRow(_ context.Context, query string, args ...any) database.Scanner {
	r := c.parent.next(query, args)
	if r.Err != nil {
		return &row{err: r.Err}
	}
	if len(r.Rows) == 0 {
		return &row{err: sql.ErrNoRows}
	}
	return &row{values: r.Rows[0]}
}

func (c *conn) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	r := c.parent.next(query, args)
	if r.Err != nil {
		return nil, r.Err
	}
	return &rows{data: r.Rows, pos: -1}, nil
}

func (c *conn) Ping(_ context.Context) error {
	return nil
}

func (c *conn) Close(_ context.Context) error {
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	c.parent.closed++
	return nil
}

type row struct {
	values []any
	err    error
}

func (r *row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type rows struct {
	data [][]any
	pos  int
}

func (r *rows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}

func (r *rows) Scan(dest ...any) error {
	return assign(r.data[r.pos], dest)
}

func (r *rows) Err() error   { return nil }
func (r *rows) Close() error { return nil }

// assign copies values into scan destinations, allocating for pointer targets
// (e.g. **time.Time) and leaving them nil for nil values.
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("databasetest: %d values for %d destinations", len(values), len(dest))
	}

	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("databasetest: destination %d is not a non-nil pointer", i)
		}
		target = target.Elem()

		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		src := reflect.ValueOf(values[i])
		if target.Kind() == reflect.Pointer && src.Kind() != reflect.Pointer {
			holder := reflect.New(target.Type().Elem())
			if !src.Type().ConvertibleTo(holder.Elem().Type()) {
				return fmt.Errorf("databasetest: cannot assign %T to destination %d", values[i], i)
			}
			holder.Elem().Set(src.Convert(holder.Elem().Type()))
			target.Set(holder)
			continue
		}

		if !src.Type().ConvertibleTo(target.Type()) {
			return fmt.Errorf("databasetest: cannot assign %T to destination %d", values[i], i)
		}
		target.Set(src.Convert(target.Type()))
	}

	return nil
}
