package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorService "library-manager/internal/domains/author/service"
	bookService "library-manager/internal/domains/book/service"
	borrowService "library-manager/internal/domains/borrow/service"
	genreService "library-manager/internal/domains/genre/service"
	userService "library-manager/internal/domains/user/service"
)

var today = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	authors *memAuthors
	genres  *memGenres
	users   *memUsers
	books   *memBooks
	ledger  *memLedger
	svc     Services
}

func newFixture() *fixture {
	f := &fixture{
		authors: &memAuthors{},
		genres:  &memGenres{},
		users:   &memUsers{},
	}
	f.books = &memBooks{authors: f.authors, genres: f.genres}
	f.ledger = &memLedger{books: f.books, users: f.users}

	authors := authorService.NewAuthorService(f.authors)
	genres := genreService.NewGenreService(f.genres)
	f.svc = Services{
		Books:   bookService.NewBookService(f.books, authors, genres),
		Users:   userService.NewUserService(f.users),
		Authors: authors,
		Genres:  genres,
		Borrows: borrowService.NewBorrowService(f.ledger, f.books, func() time.Time { return today }),
	}
	return f
}

// run feeds lines to the menu and returns everything it printed.
func (f *fixture) run(t *testing.T, lines ...string) string {
	t.Helper()

	var out strings.Builder
	input := strings.Join(lines, "\n") + "\n"
	err := New(strings.NewReader(input), &out, f.svc).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func seedCatalog() []string {
	return []string{
		"3", "1", "A.Author", "bio",
		"4", "1", "Fiction", "desc", "cat",
		"2", "1", "Ann", "U1",
		"1", "1", "Title1", "A.Author", "Fiction", "111", "2024-01-01",
	}
}

func TestRun_Exit(t *testing.T) {
	out := newFixture().run(t, "5")

	assert.Contains(t, out, "Library Management System")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_EndOfInputIsNormalQuit(t *testing.T) {
	var out strings.Builder

	err := New(strings.NewReader(""), &out, newFixture().svc).Run(context.Background())

	assert.NoError(t, err)
}

func TestRun_EndOfInputInsideSubmenu(t *testing.T) {
	var out strings.Builder

	err := New(strings.NewReader("1\n1\nTitle1\n"), &out, newFixture().svc).Run(context.Background())

	assert.NoError(t, err)
}

func TestRun_CancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder

	err := New(strings.NewReader("1\n"), &out, newFixture().svc).Run(ctx)

	assert.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_InvalidChoices(t *testing.T) {
	out := newFixture().run(t, "9", "1", "42", "5")

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Invalid choice.\n")
}

func TestWalkThrough(t *testing.T) {
	f := newFixture()
	lines := append(seedCatalog(),
		"1", "4", "111",
		"1", "2", "U1", "111",
		"1", "4", "111",
		"1", "7",
		"1", "3", "U1", "111",
		"1", "4", "111",
		"2", "4", "U1",
		"5",
	)

	out := f.run(t, lines...)

	assert.Contains(t, out, "Author added successfully.")
	assert.Contains(t, out, "Genre added successfully.")
	assert.Contains(t, out, "User added successfully.")
	assert.Contains(t, out, "Book added successfully.")
	assert.Contains(t, out, "Title: Title1, Author: A.Author, ISBN: 111, Published: 2024-01-01, Status: Available")
	assert.Contains(t, out, "Book borrowed successfully.")
	assert.Contains(t, out, "Title: Title1, Author: A.Author, ISBN: 111, Published: 2024-01-01, Status: Borrowed")
	assert.Contains(t, out, "Title: Title1, ISBN: 111, Borrower: Ann (U1), Borrowed: 2024-05-10")
	assert.Contains(t, out, "Book returned successfully.")
	assert.Contains(t, out, "Title: Title1, ISBN: 111, Borrowed: 2024-05-10, Returned: 2024-05-10")

	require.Len(t, f.ledger.rows, 1)
	require.NotNil(t, f.ledger.rows[0].ReturnDate)
	assert.True(t, f.books.rows[0].Available)
}

func TestBorrow_Unavailable(t *testing.T) {
	f := newFixture()
	lines := append(seedCatalog(),
		"1", "2", "U1", "111",
		"1", "2", "U1", "111",
		"5",
	)

	out := f.run(t, lines...)

	assert.Contains(t, out, "Borrowing failed: book is already borrowed")
	assert.Len(t, f.ledger.rows, 1)
}

func TestBorrow_UnknownUser(t *testing.T) {
	f := newFixture()
	lines := append(seedCatalog(), "1", "2", "U9", "5")

	out := f.run(t, lines...)

	assert.Contains(t, out, "User not found.")
	assert.True(t, f.books.rows[0].Available)
}

func TestReturn_NeverBorrowed(t *testing.T) {
	f := newFixture()
	lines := append(seedCatalog(), "1", "3", "U1", "111", "5")

	out := f.run(t, lines...)

	assert.Contains(t, out, "Book marked available. No open borrow record was found for this user.")
	assert.Empty(t, f.ledger.rows)
}

func TestAddBook_UnknownAuthorRejected(t *testing.T) {
	f := newFixture()

	out := f.run(t,
		"4", "1", "Fiction", "desc", "cat",
		"1", "1", "Title1", "Nobody", "Fiction", "111", "2024-01-01",
		"1", "6",
		"5",
	)

	assert.Contains(t, out, "Adding book failed: author does not exist: Nobody")
	assert.Contains(t, out, "No books found.")
	assert.Empty(t, f.books.rows)
}

func TestListings(t *testing.T) {
	f := newFixture()
	lines := append(seedCatalog(),
		"1", "5", "Title",
		"1", "6",
		"2", "3",
		"3", "3",
		"4", "3",
		"2", "2", "U1",
		"3", "2", "Nobody",
		"4", "2", "Fiction",
		"5",
	)

	out := f.run(t, lines...)

	assert.Equal(t, 2, strings.Count(out, "ID: 1, Title: Title1, Author ID: 1, Genre ID: 1, ISBN: 111, Publication Date: 2024-01-01, Availability: 1"))
	assert.Contains(t, out, "ID: 1, Name: Ann, Library ID: U1")
	assert.Contains(t, out, "ID: 1, Name: A.Author, Biography: bio")
	assert.Contains(t, out, "ID: 1, Name: Fiction, Description: desc, Category: cat")
	assert.Contains(t, out, "Name: Ann, Library ID: U1")
	assert.Contains(t, out, "Author not found.")
	assert.Contains(t, out, "Genre: Fiction, Description: desc, Category: cat")
}

func TestDuplicateLibraryID(t *testing.T) {
	out := newFixture().run(t, "2", "1", "Ann", "U1", "2", "1", "Bob", "U1", "5")

	assert.Contains(t, out, "Adding user failed: user with this library ID already exists")
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestRun_ReadErrorIsReturned(t *testing.T) {
	var out strings.Builder

	err := New(brokenReader{}, &out, newFixture().svc).Run(context.Background())

	assert.EqualError(t, err, "tty gone")
}
