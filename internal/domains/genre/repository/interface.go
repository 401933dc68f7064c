package repository

import (
	"context"

	"library-manager/internal/domains/genre/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, genre *model.Genre) error
	// GetByName errors: ErrGenreNotFound
	GetByName(ctx context.Context, name string) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
}
