package repository

import (
	"context"
	"time"

	"library-manager/internal/domains/borrow/model"
)

// LedgerInterface is the borrowed_books table. Rows are inserted and closed,
// never deleted.
type LedgerInterface interface {
	Insert(ctx context.Context, record *model.Record) error
	// LatestOpenID returns the newest open row for the pair.
	// errors: ErrNoOpenBorrow
	LatestOpenID(ctx context.Context, userID, bookID int64) (int64, error)
	// Close sets the return date on an open row and reports whether it changed.
	Close(ctx context.Context, id int64, returnDate time.Time) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Loan, error)
	ListOpen(ctx context.Context) ([]model.Loan, error)
}
