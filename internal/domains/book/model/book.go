package model

import (
	"fmt"
	"time"
)

// DateLayout is the layout publication dates are entered and printed in.
const DateLayout = "2006-01-02"

// Book is a row of the books table. The availability column is stored as
// 1/0 and surfaced here as Available.
type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	AuthorID        int64     `json:"author_id" db:"author_id"`
	GenreID         int64     `json:"genre_id" db:"genre_id"`
	ISBN            string    `json:"isbn" db:"isbn"`
	PublicationDate time.Time `json:"publication_date" db:"publication_date"`
	Available       bool      `json:"available" db:"availability"`
}

// BookDetails is a book joined with its author and genre names.
type BookDetails struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	AuthorName      string    `json:"author"`
	GenreName       string    `json:"genre"`
	ISBN            string    `json:"isbn"`
	PublicationDate time.Time `json:"publication_date"`
	Available       bool      `json:"available"`
}

func (d *BookDetails) Status() string {
	if d.Available {
		return "Available"
	}
	return "Borrowed"
}

func (d *BookDetails) Describe() string {
	return fmt.Sprintf("Title: %s, Author: %s, ISBN: %s, Published: %s, Status: %s",
		d.Title, d.AuthorName, d.ISBN, d.PublicationDate.Format(DateLayout), d.Status())
}

// CreateBookRequest - POST /api/v1/books
// Author and genre are given by name and resolved before the insert.
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required"`
	AuthorName      string `json:"author" binding:"required"`
	GenreName       string `json:"genre" binding:"required"`
	ISBN            string `json:"isbn" binding:"required"`
	PublicationDate string `json:"publication_date" binding:"required"`
}

// ToEntity builds the row to insert. Availability always starts at 1.
func (req *CreateBookRequest) ToEntity(authorID, genreID int64, published time.Time) *Book {
	return &Book{
		Title:           req.Title,
		AuthorID:        authorID,
		GenreID:         genreID,
		ISBN:            req.ISBN,
		PublicationDate: published,
		Available:       true,
	}
}

// ParseDate parses a YYYY-MM-DD date as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPublicationDate, s)
	}
	return t, nil
}
