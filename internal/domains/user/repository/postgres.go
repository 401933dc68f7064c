package repository

import (
	"context"
	"errors"
	"fmt"

	"library-manager/internal/domains/user/model"
	"library-manager/internal/infrastructure/database"
)

type sqlRepository struct {
	db *database.Executor
}

func NewSQLRepository(db *database.Executor) RepositoryInterface {
	return &sqlRepository{db: db}
}

func scanUser(s database.Scanner) (model.User, error) {
	var u model.User
	err := s.Scan(&u.ID, &u.Name, &u.LibraryID)
	return u, err
}

func (r *sqlRepository) Create(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (name, library_id) VALUES (?, ?)`

	if _, err := r.db.Exec(ctx, query, u.Name, u.LibraryID); err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrDuplicateLibraryID
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlRepository) GetByLibraryID(ctx context.Context, libraryID string) (*model.User, error) {
	query := `SELECT id, name, library_id FROM users WHERE library_id = ?`

	u, err := database.QueryOne(ctx, r.db, scanUser, query, libraryID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by library id: %w", err)
	}
	return &u, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, name, library_id FROM users ORDER BY id`

	users, err := database.QueryAll(ctx, r.db, scanUser, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
