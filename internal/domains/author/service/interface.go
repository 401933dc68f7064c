package service

import (
	"context"

	"library-manager/internal/domains/author/model"
)

// Service defines the author operations offered to the CLI and the HTTP API
type Service interface {
	Add(ctx context.Context, req *model.CreateAuthorRequest) error
	GetByName(ctx context.Context, name string) (*model.Author, error)
	// Describe returns the printable detail line, or ErrAuthorNotFound
	Describe(ctx context.Context, name string) (string, error)
	List(ctx context.Context) ([]model.Author, error)
}
