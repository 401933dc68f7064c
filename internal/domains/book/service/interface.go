package service

import (
	"context"

	authormodel "library-manager/internal/domains/author/model"
	"library-manager/internal/domains/book/model"
	genremodel "library-manager/internal/domains/genre/model"
)

type Service interface {
	// Add resolves the author and genre by name and inserts the book.
	// Nothing is inserted when either name is unknown.
	Add(ctx context.Context, req *model.CreateBookRequest) error
	GetDetails(ctx context.Context, isbn string) (*model.BookDetails, error)
	Describe(ctx context.Context, isbn string) (string, error)
	Search(ctx context.Context, title string) ([]model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
}

type AuthorLookup interface {
	GetByName(ctx context.Context, name string) (*authormodel.Author, error)
}

type GenreLookup interface {
	GetByName(ctx context.Context, name string) (*genremodel.Genre, error)
}
