package cli

import (
	"context"
	"errors"

	"library-manager/internal/domains/book/model"
	borrowModel "library-manager/internal/domains/borrow/model"
	userModel "library-manager/internal/domains/user/model"
)

func (m *Menu) bookMenu(ctx context.Context) error {
	return m.submenu(ctx, "Book Operations", []action{
		{"Add a new book", m.addBook},
		{"Borrow a book", m.borrowBook},
		{"Return a book", m.returnBook},
		{"Display book details", m.bookDetails},
		{"Search for a book", m.searchBooks},
		{"Display all books", m.listBooks},
		{"Display outstanding loans", m.outstandingLoans},
	})
}

func (m *Menu) addBook(ctx context.Context) error {
	v, err := m.prompts(
		"Enter book title: ",
		"Enter author name: ",
		"Enter genre name: ",
		"Enter ISBN: ",
		"Enter publication date (YYYY-MM-DD): ",
	)
	if err != nil {
		return err
	}

	req := &model.CreateBookRequest{
		Title:           v[0],
		AuthorName:      v[1],
		GenreName:       v[2],
		ISBN:            v[3],
		PublicationDate: v[4],
	}
	if err := m.svc.Books.Add(ctx, req); err != nil {
		m.failed("Adding book", err)
		return nil
	}

	m.println("Book added successfully.")
	return nil
}

// authenticate asks for a library ID and resolves it, reporting unknown users.
func (m *Menu) authenticate(ctx context.Context) (int64, bool, error) {
	libraryID, err := m.prompt("Enter library ID: ")
	if err != nil {
		return 0, false, err
	}

	userID, err := m.svc.Users.Authenticate(ctx, libraryID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			m.println("User not found.")
		} else {
			m.failed("User lookup", err)
		}
		return 0, false, nil
	}
	return userID, true, nil
}

func (m *Menu) borrowBook(ctx context.Context) error {
	userID, ok, err := m.authenticate(ctx)
	if err != nil || !ok {
		return err
	}

	isbn, err := m.prompt("Enter book ISBN: ")
	if err != nil {
		return err
	}

	if _, err := m.svc.Borrows.Borrow(ctx, userID, isbn); err != nil {
		m.failed("Borrowing", err)
		return nil
	}

	m.println("Book borrowed successfully.")
	return nil
}

func (m *Menu) returnBook(ctx context.Context) error {
	userID, ok, err := m.authenticate(ctx)
	if err != nil || !ok {
		return err
	}

	isbn, err := m.prompt("Enter book ISBN: ")
	if err != nil {
		return err
	}

	closed, err := m.svc.Borrows.Return(ctx, userID, isbn)
	if err != nil {
		m.failed("Returning", err)
		return nil
	}

	if closed {
		m.println("Book returned successfully.")
	} else {
		m.println("Book marked available. No open borrow record was found for this user.")
	}
	return nil
}

func (m *Menu) bookDetails(ctx context.Context) error {
	isbn, err := m.prompt("Enter book ISBN: ")
	if err != nil {
		return err
	}

	line, err := m.svc.Books.Describe(ctx, isbn)
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		m.println("Book not found.")
	case err != nil:
		m.failed("Lookup", err)
	default:
		m.println(line)
	}
	return nil
}

func (m *Menu) searchBooks(ctx context.Context) error {
	title, err := m.prompt("Enter book title to search: ")
	if err != nil {
		return err
	}

	books, err := m.svc.Books.Search(ctx, title)
	if err != nil {
		m.failed("Search", err)
		return nil
	}
	m.printBooks(books)
	return nil
}

func (m *Menu) listBooks(ctx context.Context) error {
	books, err := m.svc.Books.List(ctx)
	if err != nil {
		m.failed("Listing books", err)
		return nil
	}
	m.printBooks(books)
	return nil
}

func (m *Menu) printBooks(books []model.Book) {
	if len(books) == 0 {
		m.println("No books found.")
		return
	}

	for _, b := range books {
		availability := 0
		if b.Available {
			availability = 1
		}
		m.printf("ID: %d, Title: %s, Author ID: %d, Genre ID: %d, ISBN: %s, Publication Date: %s, Availability: %d\n",
			b.ID, b.Title, b.AuthorID, b.GenreID, b.ISBN, b.PublicationDate.Format(model.DateLayout), availability)
	}
}

func (m *Menu) outstandingLoans(ctx context.Context) error {
	loans, err := m.svc.Borrows.Outstanding(ctx)
	if err != nil {
		m.failed("Listing loans", err)
		return nil
	}

	if len(loans) == 0 {
		m.println("No books are currently borrowed.")
		return nil
	}

	for _, l := range loans {
		m.printf("Title: %s, ISBN: %s, Borrower: %s (%s), Borrowed: %s\n",
			l.Title, l.ISBN, l.UserName, l.LibraryID, l.BorrowDate.Format(model.DateLayout))
	}
	return nil
}

func formatReturn(l borrowModel.Loan) string {
	if l.ReturnDate == nil {
		return "not returned"
	}
	return l.ReturnDate.Format(model.DateLayout)
}
