package cli

import (
	"context"
	"strings"
	"time"

	authorModel "library-manager/internal/domains/author/model"
	bookModel "library-manager/internal/domains/book/model"
	borrowModel "library-manager/internal/domains/borrow/model"
	genreModel "library-manager/internal/domains/genre/model"
	userModel "library-manager/internal/domains/user/model"
)

// In-memory repositories with the semantics of the SQL ones, so the menu
// can be driven against the real services.

type memAuthors struct{ rows []authorModel.Author }

func (r *memAuthors) Create(_ context.Context, a *authorModel.Author) error {
	for _, x := range r.rows {
		if x.Name == a.Name {
			return authorModel.ErrDuplicateAuthor
		}
	}
	a.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *a)
	return nil
}

func (r *memAuthors) GetByName(_ context.Context, name string) (*authorModel.Author, error) {
	for _, x := range r.rows {
		if x.Name == name {
			return &x, nil
		}
	}
	return nil, authorModel.ErrAuthorNotFound
}

func (r *memAuthors) List(context.Context) ([]authorModel.Author, error) { return r.rows, nil }

type memGenres struct{ rows []genreModel.Genre }

func (r *memGenres) Create(_ context.Context, g *genreModel.Genre) error {
	for _, x := range r.rows {
		if x.Name == g.Name {
			return genreModel.ErrDuplicateGenre
		}
	}
	g.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *g)
	return nil
}

func (r *memGenres) GetByName(_ context.Context, name string) (*genreModel.Genre, error) {
	for _, x := range r.rows {
		if x.Name == name {
			return &x, nil
		}
	}
	return nil, genreModel.ErrGenreNotFound
}

func (r *memGenres) List(context.Context) ([]genreModel.Genre, error) { return r.rows, nil }

type memUsers struct{ rows []userModel.User }

func (r *memUsers) Create(_ context.Context, u *userModel.User) error {
	for _, x := range r.rows {
		if x.LibraryID == u.LibraryID {
			return userModel.ErrDuplicateLibraryID
		}
	}
	u.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *u)
	return nil
}

func (r *memUsers) GetByLibraryID(_ context.Context, libraryID string) (*userModel.User, error) {
	for _, x := range r.rows {
		if x.LibraryID == libraryID {
			return &x, nil
		}
	}
	return nil, userModel.ErrUserNotFound
}

func (r *memUsers) List(context.Context) ([]userModel.User, error) { return r.rows, nil }

type memBooks struct {
	rows    []bookModel.Book
	authors *memAuthors
	genres  *memGenres
}

func (r *memBooks) find(isbn string) *bookModel.Book {
	for i := range r.rows {
		if r.rows[i].ISBN == isbn {
			return &r.rows[i]
		}
	}
	return nil
}

func (r *memBooks) Create(_ context.Context, b *bookModel.Book) error {
	if r.find(b.ISBN) != nil {
		return bookModel.ErrDuplicateISBN
	}
	b.ID = int64(len(r.rows) + 1)
	b.Available = true
	r.rows = append(r.rows, *b)
	return nil
}

func (r *memBooks) GetDetailsByISBN(_ context.Context, isbn string) (*bookModel.BookDetails, error) {
	b := r.find(isbn)
	if b == nil {
		return nil, bookModel.ErrBookNotFound
	}
	return &bookModel.BookDetails{
		ID:              b.ID,
		Title:           b.Title,
		AuthorName:      r.authors.rows[b.AuthorID-1].Name,
		GenreName:       r.genres.rows[b.GenreID-1].Name,
		ISBN:            b.ISBN,
		PublicationDate: b.PublicationDate,
		Available:       b.Available,
	}, nil
}

func (r *memBooks) GetIDByISBN(_ context.Context, isbn string) (int64, error) {
	b := r.find(isbn)
	if b == nil {
		return 0, bookModel.ErrBookNotFound
	}
	return b.ID, nil
}

func (r *memBooks) SearchByTitle(_ context.Context, title string) ([]bookModel.Book, error) {
	var out []bookModel.Book
	for _, b := range r.rows {
		if strings.Contains(b.Title, title) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBooks) List(context.Context) ([]bookModel.Book, error) { return r.rows, nil }

func (r *memBooks) MarkBorrowed(_ context.Context, isbn string) (bool, error) {
	b := r.find(isbn)
	if b == nil || !b.Available {
		return false, nil
	}
	b.Available = false
	return true, nil
}

func (r *memBooks) MarkAvailable(_ context.Context, isbn string) (bool, error) {
	b := r.find(isbn)
	if b == nil {
		return false, nil
	}
	b.Available = true
	return true, nil
}

type memLedger struct {
	rows  []borrowModel.Record
	books *memBooks
	users *memUsers
}

func (l *memLedger) Insert(_ context.Context, rec *borrowModel.Record) error {
	rec.ID = int64(len(l.rows) + 1)
	l.rows = append(l.rows, *rec)
	return nil
}

func (l *memLedger) LatestOpenID(_ context.Context, userID, bookID int64) (int64, error) {
	for i := len(l.rows) - 1; i >= 0; i-- {
		r := l.rows[i]
		if r.UserID == userID && r.BookID == bookID && r.Open() {
			return r.ID, nil
		}
	}
	return 0, borrowModel.ErrNoOpenBorrow
}

func (l *memLedger) Close(_ context.Context, id int64, returnDate time.Time) (bool, error) {
	for i := range l.rows {
		if l.rows[i].ID == id && l.rows[i].Open() {
			l.rows[i].ReturnDate = &returnDate
			return true, nil
		}
	}
	return false, nil
}

func (l *memLedger) loan(r borrowModel.Record) borrowModel.Loan {
	b := l.books.rows[r.BookID-1]
	u := l.users.rows[r.UserID-1]
	return borrowModel.Loan{
		RecordID:   r.ID,
		ISBN:       b.ISBN,
		Title:      b.Title,
		UserName:   u.Name,
		LibraryID:  u.LibraryID,
		BorrowDate: r.BorrowDate,
		ReturnDate: r.ReturnDate,
	}
}

func (l *memLedger) ListByUser(_ context.Context, userID int64) ([]borrowModel.Loan, error) {
	var out []borrowModel.Loan
	for i := len(l.rows) - 1; i >= 0; i-- {
		if l.rows[i].UserID == userID {
			out = append(out, l.loan(l.rows[i]))
		}
	}
	return out, nil
}

func (l *memLedger) ListOpen(context.Context) ([]borrowModel.Loan, error) {
	var out []borrowModel.Loan
	for _, r := range l.rows {
		if r.Open() {
			out = append(out, l.loan(r))
		}
	}
	return out, nil
}
