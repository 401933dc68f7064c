package repository

import (
	"context"

	"library-manager/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors
type RepositoryInterface interface {
	// Create inserts one author row.
	// Errors: ErrDuplicateAuthor if the store rejects the name as a duplicate
	Create(ctx context.Context, author *model.Author) error

	// GetByName looks an author up by natural key.
	// Errors: ErrAuthorNotFound
	GetByName(ctx context.Context, name string) (*model.Author, error)

	// List returns every author in insertion order
	List(ctx context.Context) ([]model.Author, error)
}
