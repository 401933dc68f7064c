package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-manager/internal/domains/author/model"
	"library-manager/internal/domains/book/model"
	genremodel "library-manager/internal/domains/genre/model"
)

type fakeRepo struct {
	books   []model.Book
	creates int
}

func (f *fakeRepo) Create(_ context.Context, b *model.Book) error {
	f.creates++
	for _, existing := range f.books {
		if existing.ISBN == b.ISBN {
			return model.ErrDuplicateISBN
		}
	}
	b.ID = int64(len(f.books) + 1)
	f.books = append(f.books, *b)
	return nil
}

func (f *fakeRepo) GetDetailsByISBN(_ context.Context, isbn string) (*model.BookDetails, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			return &model.BookDetails{
				ID:              b.ID,
				Title:           b.Title,
				AuthorName:      "A.Author",
				ISBN:            b.ISBN,
				PublicationDate: b.PublicationDate,
				Available:       b.Available,
			}, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (f *fakeRepo) GetIDByISBN(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeRepo) SearchByTitle(context.Context, string) ([]model.Book, error) { return f.books, nil }

func (f *fakeRepo) List(context.Context) ([]model.Book, error) { return f.books, nil }

func (f *fakeRepo) MarkBorrowed(context.Context, string) (bool, error) { return false, nil }

func (f *fakeRepo) MarkAvailable(context.Context, string) (bool, error) { return false, nil }

type authorLookup map[string]int64

func (l authorLookup) GetByName(_ context.Context, name string) (*authormodel.Author, error) {
	id, ok := l[name]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	return &authormodel.Author{ID: id, Name: name}, nil
}

type genreLookup map[string]int64

func (l genreLookup) GetByName(_ context.Context, name string) (*genremodel.Genre, error) {
	id, ok := l[name]
	if !ok {
		return nil, genremodel.ErrGenreNotFound
	}
	return &genremodel.Genre{ID: id, Name: name}, nil
}

func validRequest() *model.CreateBookRequest {
	return &model.CreateBookRequest{
		Title:           "Title1",
		AuthorName:      "A.Author",
		GenreName:       "Fiction",
		ISBN:            "111",
		PublicationDate: "2020-01-01",
	}
}

func TestAdd(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewBookService(repo, authorLookup{"A.Author": 3}, genreLookup{"Fiction": 5})

	require.NoError(t, svc.Add(context.Background(), validRequest()))

	require.Len(t, repo.books, 1)
	b := repo.books[0]
	assert.EqualValues(t, 3, b.AuthorID)
	assert.EqualValues(t, 5, b.GenreID)
	assert.True(t, b.Available)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), b.PublicationDate)
}

func TestAdd_RejectedBeforeInsert(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.CreateBookRequest)
		wantErr error
	}{
		{"unknown author", func(r *model.CreateBookRequest) { r.AuthorName = "Nobody" }, model.ErrUnknownAuthor},
		{"unknown genre", func(r *model.CreateBookRequest) { r.GenreName = "Poetry" }, model.ErrUnknownGenre},
		{"bad date", func(r *model.CreateBookRequest) { r.PublicationDate = "01/01/2020" }, model.ErrInvalidPublicationDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewBookService(repo, authorLookup{"A.Author": 3}, genreLookup{"Fiction": 5})
			req := validRequest()
			tt.mutate(req)

			err := svc.Add(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.creates)
		})
	}
}

func TestAdd_LookupFailurePropagates(t *testing.T) {
	repo := &fakeRepo{}
	boom := errors.New("connection refused")
	svc := NewBookService(repo, failingAuthors{err: boom}, genreLookup{"Fiction": 5})

	err := svc.Add(context.Background(), validRequest())

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, model.ErrUnknownAuthor)
	assert.Zero(t, repo.creates)
}

type failingAuthors struct{ err error }

func (f failingAuthors) GetByName(context.Context, string) (*authormodel.Author, error) {
	return nil, f.err
}

func TestDescribe(t *testing.T) {
	svc := NewBookService(&fakeRepo{}, authorLookup{"A.Author": 1}, genreLookup{"Fiction": 1})
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, validRequest()))

	line, err := svc.Describe(ctx, " 111 ")
	require.NoError(t, err)
	assert.Equal(t, "Title: Title1, Author: A.Author, ISBN: 111, Published: 2020-01-01, Status: Available", line)

	_, err = svc.Describe(ctx, "999")
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
