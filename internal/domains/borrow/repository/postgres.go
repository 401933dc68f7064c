package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-manager/internal/domains/borrow/model"
	"library-manager/internal/infrastructure/database"
)

type sqlLedger struct {
	db *database.Executor
}

func NewSQLLedger(db *database.Executor) LedgerInterface {
	return &sqlLedger{db: db}
}

const loanSelect = `
    SELECT bb.id, b.isbn, b.title, u.name, u.library_id, bb.borrow_date, bb.return_date
    FROM borrowed_books bb
    JOIN books b ON bb.book_id = b.id
    JOIN users u ON bb.user_id = u.id
`

func scanLoan(s database.Scanner) (model.Loan, error) {
	var l model.Loan
	err := s.Scan(&l.RecordID, &l.ISBN, &l.Title, &l.UserName, &l.LibraryID, &l.BorrowDate, &l.ReturnDate)
	return l, err
}

func scanID(s database.Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}

func (r *sqlLedger) Insert(ctx context.Context, rec *model.Record) error {
	query := `INSERT INTO borrowed_books (user_id, book_id, borrow_date) VALUES (?, ?, ?)`

	if _, err := r.db.Exec(ctx, query, rec.UserID, rec.BookID, rec.BorrowDate); err != nil {
		return fmt.Errorf("failed to insert borrow record: %w", err)
	}
	return nil
}

func (r *sqlLedger) LatestOpenID(ctx context.Context, userID, bookID int64) (int64, error) {
	query := `
        SELECT id FROM borrowed_books
        WHERE user_id = ? AND book_id = ? AND return_date IS NULL
        ORDER BY borrow_date DESC, id DESC
        LIMIT 1
    `

	id, err := database.QueryOne(ctx, r.db, scanID, query, userID, bookID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, model.ErrNoOpenBorrow
		}
		return 0, fmt.Errorf("failed to find open borrow record: %w", err)
	}
	return id, nil
}

func (r *sqlLedger) Close(ctx context.Context, id int64, returnDate time.Time) (bool, error) {
	query := `UPDATE borrowed_books SET return_date = ? WHERE id = ? AND return_date IS NULL`

	n, err := r.db.Exec(ctx, query, returnDate, id)
	if err != nil {
		return false, fmt.Errorf("failed to close borrow record: %w", err)
	}
	return n > 0, nil
}

func (r *sqlLedger) ListByUser(ctx context.Context, userID int64) ([]model.Loan, error) {
	query := loanSelect + `
    WHERE bb.user_id = ?
    ORDER BY bb.borrow_date DESC, bb.id DESC
`

	loans, err := database.QueryAll(ctx, r.db, scanLoan, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrow history: %w", err)
	}
	return loans, nil
}

func (r *sqlLedger) ListOpen(ctx context.Context) ([]model.Loan, error) {
	query := loanSelect + `
    WHERE bb.return_date IS NULL
    ORDER BY bb.borrow_date, bb.id
`

	loans, err := database.QueryAll(ctx, r.db, scanLoan, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding loans: %w", err)
	}
	return loans, nil
}
