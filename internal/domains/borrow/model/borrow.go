package model

import "time"

// Record is a row of the borrowed_books ledger. ReturnDate is nil while the
// loan is open.
type Record struct {
	ID         int64      `json:"id,omitempty" db:"id"`
	UserID     int64      `json:"user_id" db:"user_id"`
	BookID     int64      `json:"book_id" db:"book_id"`
	BorrowDate time.Time  `json:"borrow_date" db:"borrow_date"`
	ReturnDate *time.Time `json:"return_date" db:"return_date"`
}

func (r *Record) Open() bool {
	return r.ReturnDate == nil
}

// Loan is a ledger row joined with the book and the borrower.
type Loan struct {
	RecordID   int64      `json:"id"`
	ISBN       string     `json:"isbn"`
	Title      string     `json:"title"`
	UserName   string     `json:"user_name"`
	LibraryID  string     `json:"library_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date"`
}

func (l *Loan) Open() bool {
	return l.ReturnDate == nil
}

// BorrowRequest - POST /api/v1/books/:isbn/borrow and /return
type BorrowRequest struct {
	LibraryID string `json:"library_id" binding:"required"`
}

// ReturnResult reports whether a ledger row was closed. A book can be
// returned without ever having been borrowed; Closed is false then.
type ReturnResult struct {
	ISBN   string `json:"isbn"`
	Closed bool   `json:"closed"`
}
