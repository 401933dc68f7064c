package service

import (
	"context"

	"library-manager/internal/domains/user/model"
)

type Service interface {
	Add(ctx context.Context, req *model.CreateUserRequest) error
	// Authenticate resolves a library ID to the internal user id.
	// It is a plain lookup: knowing the library ID is the whole credential.
	Authenticate(ctx context.Context, libraryID string) (int64, error)
	GetByLibraryID(ctx context.Context, libraryID string) (*model.User, error)
	Describe(ctx context.Context, libraryID string) (string, error)
	List(ctx context.Context) ([]model.User, error)
}
