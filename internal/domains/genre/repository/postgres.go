package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-manager/internal/domains/genre/model"
	"library-manager/internal/infrastructure/database"
	"library-manager/pkg/cache"
)

// sqlRepository implements RepositoryInterface.
// Genres are immutable after insert; lookups by name go through the cache.
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

const genreNameKeyPrefix = "genre:name:"

const genreColumns = `id, name, COALESCE(description, ''), COALESCE(category, '')`

func scanGenre(s database.Scanner) (model.Genre, error) {
	var g model.Genre
	err := s.Scan(&g.ID, &g.Name, &g.Description, &g.Category)
	return g, err
}

func (r *sqlRepository) Create(ctx context.Context, g *model.Genre) error {
	query := `INSERT INTO genres (name, description, category) VALUES (?, ?, ?)`

	if _, err := r.db.Exec(ctx, query, g.Name, g.Description, g.Category); err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrDuplicateGenre
		}
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

func (r *sqlRepository) GetByName(ctx context.Context, name string) (*model.Genre, error) {
	cacheKey := genreNameKeyPrefix + name

	var cached model.Genre
	hit, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("genre cache read failed")
	} else if hit {
		return &cached, nil
	}

	query := `SELECT ` + genreColumns + ` FROM genres WHERE name = ?`

	g, err := database.QueryOne(ctx, r.db, scanGenre, query, name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, g, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("genre cache write failed")
	}

	return &g, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]model.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres ORDER BY id`

	genres, err := database.QueryAll(ctx, r.db, scanGenre, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}
