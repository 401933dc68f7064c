package service

import (
	"context"

	"library-manager/internal/domains/borrow/model"
)

type Service interface {
	// Borrow marks the book borrowed and records the loan.
	// errors: ErrBookNotFound, ErrBookUnavailable
	Borrow(ctx context.Context, userID int64, isbn string) (*model.Record, error)
	// Return marks the book available and closes the user's latest open loan
	// of it. It reports false when there was no open loan to close.
	// errors: ErrBookNotFound
	Return(ctx context.Context, userID int64, isbn string) (bool, error)
	History(ctx context.Context, userID int64) ([]model.Loan, error)
	Outstanding(ctx context.Context) ([]model.Loan, error)
}

// BookStore is the part of the book repository the workflow drives.
type BookStore interface {
	MarkBorrowed(ctx context.Context, isbn string) (bool, error)
	MarkAvailable(ctx context.Context, isbn string) (bool, error)
	GetIDByISBN(ctx context.Context, isbn string) (int64, error)
}
