package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"library-manager/internal/domains/author/model"
	"library-manager/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) Service {
	return &authorService{repo: repo}
}

func (s *authorService) Add(ctx context.Context, req *model.CreateAuthorRequest) error {
	author := req.ToEntity()
	author.Name = strings.TrimSpace(author.Name)

	if err := s.repo.Create(ctx, author); err != nil {
		return err
	}

	log.Info().Str("author", author.Name).Msg("author added")
	return nil
}

func (s *authorService) GetByName(ctx context.Context, name string) (*model.Author, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *authorService) Describe(ctx context.Context, name string) (string, error) {
	author, err := s.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	return author.Describe(), nil
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}
