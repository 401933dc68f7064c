package repository

import (
	"context"
	"errors"
	"fmt"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/infrastructure/database"
)

const (
	availabilityBorrowed  = 0
	availabilityAvailable = 1
)

const bookColumns = `id, title, author_id, genre_id, isbn, publication_date, availability`

type sqlRepository struct {
	db *database.Executor
}

func NewSQLRepository(db *database.Executor) RepositoryInterface {
	return &sqlRepository{db: db}
}

func scanBook(s database.Scanner) (model.Book, error) {
	var (
		b            model.Book
		availability int
	)
	err := s.Scan(&b.ID, &b.Title, &b.AuthorID, &b.GenreID, &b.ISBN, &b.PublicationDate, &availability)
	b.Available = availability == availabilityAvailable
	return b, err
}

func scanDetails(s database.Scanner) (model.BookDetails, error) {
	var (
		d            model.BookDetails
		availability int
	)
	err := s.Scan(&d.ID, &d.Title, &d.AuthorName, &d.GenreName, &d.ISBN, &d.PublicationDate, &availability)
	d.Available = availability == availabilityAvailable
	return d, err
}

func scanID(s database.Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}

func (r *sqlRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
        INSERT INTO books (title, author_id, genre_id, isbn, publication_date, availability)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.Exec(ctx, query,
		b.Title, b.AuthorID, b.GenreID, b.ISBN, b.PublicationDate, availabilityAvailable,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrDuplicateISBN
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	b.Available = true
	return nil
}

func (r *sqlRepository) GetDetailsByISBN(ctx context.Context, isbn string) (*model.BookDetails, error) {
	query := `
        SELECT b.id, b.title, a.name, COALESCE(g.name, ''), b.isbn, b.publication_date, b.availability
        FROM books b
        JOIN authors a ON b.author_id = a.id
        LEFT JOIN genres g ON b.genre_id = g.id
        WHERE b.isbn = ?
    `

	d, err := database.QueryOne(ctx, r.db, scanDetails, query, isbn)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book details: %w", err)
	}
	return &d, nil
}

func (r *sqlRepository) GetIDByISBN(ctx context.Context, isbn string) (int64, error) {
	query := `SELECT id FROM books WHERE isbn = ?`

	id, err := database.QueryOne(ctx, r.db, scanID, query, isbn)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, model.ErrBookNotFound
		}
		return 0, fmt.Errorf("failed to get book id: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) SearchByTitle(ctx context.Context, title string) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE title LIKE ? ORDER BY id`

	books, err := database.QueryAll(ctx, r.db, scanBook, query, "%"+title+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return books, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	books, err := database.QueryAll(ctx, r.db, scanBook, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (r *sqlRepository) MarkBorrowed(ctx context.Context, isbn string) (bool, error) {
	query := `UPDATE books SET availability = ? WHERE isbn = ? AND availability = ?`

	n, err := r.db.Exec(ctx, query, availabilityBorrowed, isbn, availabilityAvailable)
	if err != nil {
		return false, fmt.Errorf("failed to mark book borrowed: %w", err)
	}
	return n > 0, nil
}

func (r *sqlRepository) MarkAvailable(ctx context.Context, isbn string) (bool, error) {
	query := `UPDATE books SET availability = ? WHERE isbn = ?`

	n, err := r.db.Exec(ctx, query, availabilityAvailable, isbn)
	if err != nil {
		return false, fmt.Errorf("failed to mark book available: %w", err)
	}
	return n > 0, nil
}
