package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-manager/internal/domains/author/model"
	"library-manager/internal/infrastructure/database"
	"library-manager/pkg/cache"
)

// sqlRepository implements RepositoryInterface with plain parameterized SQL.
// Authors are never updated once created, so lookups by name are cached.
type sqlRepository struct {
	db       *database.Executor
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewSQLRepository(db *database.Executor, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &sqlRepository{
		db:       db,
		cache:    c,
		cacheTTL: ttl,
	}
}

const authorNameKeyPrefix = "author:name:"

func scanAuthor(s database.Scanner) (model.Author, error) {
	var a model.Author
	err := s.Scan(&a.ID, &a.Name, &a.Biography)
	return a, err
}

func (r *sqlRepository) Create(ctx context.Context, a *model.Author) error {
	query := `INSERT INTO authors (name, biography) VALUES (?, ?)`

	if _, err := r.db.Exec(ctx, query, a.Name, a.Biography); err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrDuplicateAuthor
		}
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

func (r *sqlRepository) GetByName(ctx context.Context, name string) (*model.Author, error) {
	cacheKey := authorNameKeyPrefix + name

	var cached model.Author
	hit, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache read failed")
	} else if hit {
		return &cached, nil
	}

	query := `
        SELECT id, name, COALESCE(biography, '')
        FROM authors
        WHERE name = ?
    `

	a, err := database.QueryOne(ctx, r.db, scanAuthor, query, name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache write failed")
	}

	return &a, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `SELECT id, name, COALESCE(biography, '') FROM authors ORDER BY id`

	authors, err := database.QueryAll(ctx, r.db, scanAuthor, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}
