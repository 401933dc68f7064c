package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"library-manager/internal/domains/user/model"
	"library-manager/internal/domains/user/repository"
)

type userService struct {
	repo repository.RepositoryInterface
}

func NewUserService(repo repository.RepositoryInterface) Service {
	return &userService{repo: repo}
}

func (s *userService) Add(ctx context.Context, req *model.CreateUserRequest) error {
	user := req.ToEntity()
	user.LibraryID = strings.TrimSpace(user.LibraryID)

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	log.Info().Str("library_id", user.LibraryID).Msg("user added")
	return nil
}

func (s *userService) Authenticate(ctx context.Context, libraryID string) (int64, error) {
	user, err := s.GetByLibraryID(ctx, libraryID)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *userService) GetByLibraryID(ctx context.Context, libraryID string) (*model.User, error) {
	return s.repo.GetByLibraryID(ctx, strings.TrimSpace(libraryID))
}

func (s *userService) Describe(ctx context.Context, libraryID string) (string, error) {
	user, err := s.GetByLibraryID(ctx, libraryID)
	if err != nil {
		return "", err
	}
	return user.Describe(), nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
