package cli

import (
	"context"
	"errors"

	bookModel "library-manager/internal/domains/book/model"
	"library-manager/internal/domains/user/model"
)

func (m *Menu) userMenu(ctx context.Context) error {
	return m.submenu(ctx, "User Operations", []action{
		{"Add a new user", m.addUser},
		{"View user details", m.userDetails},
		{"Display all users", m.listUsers},
		{"View borrowing history", m.borrowHistory},
	})
}

func (m *Menu) addUser(ctx context.Context) error {
	v, err := m.prompts("Enter user name: ", "Enter library ID: ")
	if err != nil {
		return err
	}

	if err := m.svc.Users.Add(ctx, &model.CreateUserRequest{Name: v[0], LibraryID: v[1]}); err != nil {
		m.failed("Adding user", err)
		return nil
	}

	m.println("User added successfully.")
	return nil
}

func (m *Menu) userDetails(ctx context.Context) error {
	libraryID, err := m.prompt("Enter library ID: ")
	if err != nil {
		return err
	}

	line, err := m.svc.Users.Describe(ctx, libraryID)
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		m.println("User not found.")
	case err != nil:
		m.failed("Lookup", err)
	default:
		m.println(line)
	}
	return nil
}

func (m *Menu) listUsers(ctx context.Context) error {
	users, err := m.svc.Users.List(ctx)
	if err != nil {
		m.failed("Listing users", err)
		return nil
	}

	if len(users) == 0 {
		m.println("No users found.")
		return nil
	}
	for _, u := range users {
		m.printf("ID: %d, Name: %s, Library ID: %s\n", u.ID, u.Name, u.LibraryID)
	}
	return nil
}

func (m *Menu) borrowHistory(ctx context.Context) error {
	userID, ok, err := m.authenticate(ctx)
	if err != nil || !ok {
		return err
	}

	loans, err := m.svc.Borrows.History(ctx, userID)
	if err != nil {
		m.failed("Listing history", err)
		return nil
	}

	if len(loans) == 0 {
		m.println("No borrowing history.")
		return nil
	}
	for _, l := range loans {
		m.printf("Title: %s, ISBN: %s, Borrowed: %s, Returned: %s\n",
			l.Title, l.ISBN, l.BorrowDate.Format(bookModel.DateLayout), formatReturn(l))
	}
	return nil
}
