package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	authormodel "library-manager/internal/domains/author/model"
	"library-manager/internal/domains/book/model"
	"library-manager/internal/domains/book/repository"
	genremodel "library-manager/internal/domains/genre/model"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors AuthorLookup
	genres  GenreLookup
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorLookup, genres GenreLookup) Service {
	return &bookService{
		repo:    repo,
		authors: authors,
		genres:  genres,
	}
}

func (s *bookService) Add(ctx context.Context, req *model.CreateBookRequest) error {
	published, err := model.ParseDate(strings.TrimSpace(req.PublicationDate))
	if err != nil {
		return err
	}

	author, err := s.authors.GetByName(ctx, strings.TrimSpace(req.AuthorName))
	if err != nil {
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			return fmt.Errorf("%w: %s", model.ErrUnknownAuthor, req.AuthorName)
		}
		return err
	}

	genre, err := s.genres.GetByName(ctx, strings.TrimSpace(req.GenreName))
	if err != nil {
		if errors.Is(err, genremodel.ErrGenreNotFound) {
			return fmt.Errorf("%w: %s", model.ErrUnknownGenre, req.GenreName)
		}
		return err
	}

	book := req.ToEntity(author.ID, genre.ID, published)
	book.ISBN = strings.TrimSpace(book.ISBN)

	if err := s.repo.Create(ctx, book); err != nil {
		return err
	}

	log.Info().
		Str("isbn", book.ISBN).
		Int64("author_id", author.ID).
		Int64("genre_id", genre.ID).
		Msg("book added")
	return nil
}

func (s *bookService) GetDetails(ctx context.Context, isbn string) (*model.BookDetails, error) {
	return s.repo.GetDetailsByISBN(ctx, strings.TrimSpace(isbn))
}

func (s *bookService) Describe(ctx context.Context, isbn string) (string, error) {
	details, err := s.GetDetails(ctx, isbn)
	if err != nil {
		return "", err
	}
	return details.Describe(), nil
}

func (s *bookService) Search(ctx context.Context, title string) ([]model.Book, error) {
	return s.repo.SearchByTitle(ctx, title)
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}
