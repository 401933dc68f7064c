package service

import (
	"context"

	"library-manager/internal/domains/genre/model"
)

type Service interface {
	Add(ctx context.Context, req *model.CreateGenreRequest) error
	GetByName(ctx context.Context, name string) (*model.Genre, error)
	Describe(ctx context.Context, name string) (string, error)
	List(ctx context.Context) ([]model.Genre, error)
}
