package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"library-manager/internal/domains/genre/model"
	"library-manager/internal/domains/genre/repository"
)

type genreService struct {
	repo repository.RepositoryInterface
}

func NewGenreService(repo repository.RepositoryInterface) Service {
	return &genreService{repo: repo}
}

func (s *genreService) Add(ctx context.Context, req *model.CreateGenreRequest) error {
	genre := req.ToEntity()
	genre.Name = strings.TrimSpace(genre.Name)

	if err := s.repo.Create(ctx, genre); err != nil {
		return err
	}

	log.Info().Str("genre", genre.Name).Str("category", genre.Category).Msg("genre added")
	return nil
}

func (s *genreService) GetByName(ctx context.Context, name string) (*model.Genre, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *genreService) Describe(ctx context.Context, name string) (string, error) {
	genre, err := s.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	return genre.Describe(), nil
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.List(ctx)
}
