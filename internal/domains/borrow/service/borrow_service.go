package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	bookmodel "library-manager/internal/domains/book/model"
	"library-manager/internal/domains/borrow/model"
	"library-manager/internal/domains/borrow/repository"
)

// borrowService runs each step as its own statement. There is no transaction
// around the availability flip and the ledger write: a failure between them
// leaves the book borrowed with no open ledger row, and that is logged.
type borrowService struct {
	ledger repository.LedgerInterface
	books  BookStore
	now    func() time.Time
}

// NewBorrowService builds the workflow. now defaults to time.Now.
func NewBorrowService(ledger repository.LedgerInterface, books BookStore, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &borrowService{
		ledger: ledger,
		books:  books,
		now:    now,
	}
}

// today is the current calendar day, stored as a date.
func (s *borrowService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *borrowService) Borrow(ctx context.Context, userID int64, isbn string) (*model.Record, error) {
	isbn = strings.TrimSpace(isbn)

	changed, err := s.books.MarkBorrowed(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Either the ISBN is unknown or the book is out.
		if _, err := s.books.GetIDByISBN(ctx, isbn); err != nil {
			return nil, err
		}
		return nil, model.ErrBookUnavailable
	}

	bookID, err := s.books.GetIDByISBN(ctx, isbn)
	if err != nil {
		log.Error().Err(err).Str("isbn", isbn).Int64("user_id", userID).
			Msg("book marked borrowed but its id lookup failed; no ledger row written")
		return nil, err
	}

	rec := &model.Record{
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: s.today(),
	}
	if err := s.ledger.Insert(ctx, rec); err != nil {
		log.Error().Err(err).Str("isbn", isbn).Int64("user_id", userID).
			Msg("book marked borrowed but ledger insert failed")
		return nil, err
	}

	log.Info().Str("isbn", isbn).Int64("user_id", userID).Msg("book borrowed")
	return rec, nil
}

func (s *borrowService) Return(ctx context.Context, userID int64, isbn string) (bool, error) {
	isbn = strings.TrimSpace(isbn)

	matched, err := s.books.MarkAvailable(ctx, isbn)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, bookmodel.ErrBookNotFound
	}

	bookID, err := s.books.GetIDByISBN(ctx, isbn)
	if err != nil {
		return false, err
	}

	recordID, err := s.ledger.LatestOpenID(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, model.ErrNoOpenBorrow) {
			log.Warn().Str("isbn", isbn).Int64("user_id", userID).
				Msg("book returned without an open borrow record")
			return false, nil
		}
		return false, err
	}

	closed, err := s.ledger.Close(ctx, recordID, s.today())
	if err != nil {
		return false, err
	}

	log.Info().Str("isbn", isbn).Int64("user_id", userID).Int64("record_id", recordID).Msg("book returned")
	return closed, nil
}

func (s *borrowService) History(ctx context.Context, userID int64) ([]model.Loan, error) {
	return s.ledger.ListByUser(ctx, userID)
}

func (s *borrowService) Outstanding(ctx context.Context) ([]model.Loan, error) {
	return s.ledger.ListOpen(ctx)
}
