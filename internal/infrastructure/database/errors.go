package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrNotFound: a single-row query matched nothing
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation: the store rejected the statement (unique, foreign key, not null)
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConnection: the database could not be reached or the connection broke
	ErrConnection = errors.New("database connection failure")

	// ErrQueryFailed: any other execution failure
	ErrQueryFailed = errors.New("database query failed")
)

// SQLSTATE class 23 is "integrity constraint violation"
const (
	sqlStateIntegrityClass  = "23"
	sqlStateUniqueViolation = "23505"
)

// MySQL server error numbers for constraint failures
const (
	mysqlBadNull          = 1048
	mysqlDupEntry         = 1062
	mysqlNoReferencedRow  = 1216
	mysqlRowIsReferenced  = 1217
	mysqlRowIsReferenced2 = 1451
	mysqlNoReferencedRow2 = 1452
)

// Classify wraps a driver error with one of the package sentinels so callers can
// use errors.Is without knowing the driver. The original error stays in the chain.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrConnection), errors.Is(err, ErrQueryFailed):
		return err
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case isConstraintError(err):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case isConnectionError(err):
		return fmt.Errorf("%w: %w", ErrConnection, err)
	default:
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
}

// IsUniqueViolation reports whether err is a duplicate-key failure on any supported driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == sqlStateUniqueViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDupEntry
	}

	return false
}

func isConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == sqlStateIntegrityClass
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code.Class()) == sqlStateIntegrityClass
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlBadNull, mysqlDupEntry, mysqlNoReferencedRow, mysqlRowIsReferenced,
			mysqlRowIsReferenced2, mysqlNoReferencedRow2:
			return true
		}
	}

	return false
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
