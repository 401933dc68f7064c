package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-manager/internal/domains/author/model"
	infraCache "library-manager/internal/infrastructure/cache"
	"library-manager/internal/infrastructure/database"
	"library-manager/internal/infrastructure/database/databasetest"
)

func newTestRepo(results ...databasetest.Result) (RepositoryInterface, *databasetest.Connector) {
	fake := databasetest.NewConnector(results...)
	return NewSQLRepository(database.NewExecutor(fake), infraCache.NewMemoryCache(infraCache.DefaultMemorySize), time.Minute), fake
}

func TestCreate_InsertsNameAndBiography(t *testing.T) {
	repo, fake := newTestRepo(databasetest.Result{RowsAffected: 1})

	err := repo.Create(context.Background(), &model.Author{Name: "A.Author", Biography: "bio"})

	require.NoError(t, err)
	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Query, "INSERT INTO authors")
	assert.Equal(t, []any{"A.Author", "bio"}, calls[0].Args)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo, _ := newTestRepo(databasetest.Result{Err: &pgconn.PgError{Code: "23505"}})

	err := repo.Create(context.Background(), &model.Author{Name: "A.Author"})

	assert.ErrorIs(t, err, model.ErrDuplicateAuthor)
}

func TestGetByName_NotFound(t *testing.T) {
	repo, _ := newTestRepo(databasetest.Result{})

	_, err := repo.GetByName(context.Background(), "Nobody")

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestGetByName_SecondLookupServedFromCache(t *testing.T) {
	repo, fake := newTestRepo(databasetest.Result{Rows: [][]any{{int64(3), "A.Author", "bio"}}})
	ctx := context.Background()

	first, err := repo.GetByName(ctx, "A.Author")
	require.NoError(t, err)
	second, err := repo.GetByName(ctx, "A.Author")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 3, second.ID)
	assert.Len(t, fake.Calls(), 1)
}

func TestList(t *testing.T) {
	repo, _ := newTestRepo(databasetest.Result{Rows: [][]any{
		{int64(1), "A.Author", "bio"},
		{int64(2), "B.Author", ""},
	}})

	authors, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "B.Author", authors[1].Name)
}
