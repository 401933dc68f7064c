package repository

import (
	"context"

	"library-manager/internal/domains/book/model"
)

type RepositoryInterface interface {
	// Create errors: ErrDuplicateISBN
	Create(ctx context.Context, book *model.Book) error
	// GetDetailsByISBN errors: ErrBookNotFound
	GetDetailsByISBN(ctx context.Context, isbn string) (*model.BookDetails, error)
	// GetIDByISBN errors: ErrBookNotFound
	GetIDByISBN(ctx context.Context, isbn string) (int64, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Book, error)
	List(ctx context.Context) ([]model.Book, error)

	// MarkBorrowed flips availability 1 -> 0 and reports whether a row changed.
	// An unknown ISBN and an already borrowed book both report false.
	MarkBorrowed(ctx context.Context, isbn string) (bool, error)
	// MarkAvailable sets availability to 1 and reports whether the ISBN matched.
	MarkAvailable(ctx context.Context, isbn string) (bool, error)
}
