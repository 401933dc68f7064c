package repository

import (
	"context"

	"library-manager/internal/domains/user/model"
)

type RepositoryInterface interface {
	// Create errors: ErrDuplicateLibraryID
	Create(ctx context.Context, user *model.User) error
	// GetByLibraryID errors: ErrUserNotFound
	GetByLibraryID(ctx context.Context, libraryID string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
