package cli

import (
	"context"
	"errors"

	"library-manager/internal/domains/author/model"
)

func (m *Menu) authorMenu(ctx context.Context) error {
	return m.submenu(ctx, "Author Operations", []action{
		{"Add a new author", m.addAuthor},
		{"View author details", m.authorDetails},
		{"Display all authors", m.listAuthors},
	})
}

func (m *Menu) addAuthor(ctx context.Context) error {
	v, err := m.prompts("Enter author name: ", "Enter author biography: ")
	if err != nil {
		return err
	}

	if err := m.svc.Authors.Add(ctx, &model.CreateAuthorRequest{Name: v[0], Biography: v[1]}); err != nil {
		m.failed("Adding author", err)
		return nil
	}

	m.println("Author added successfully.")
	return nil
}

func (m *Menu) authorDetails(ctx context.Context) error {
	name, err := m.prompt("Enter author name: ")
	if err != nil {
		return err
	}

	line, err := m.svc.Authors.Describe(ctx, name)
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		m.println("Author not found.")
	case err != nil:
		m.failed("Lookup", err)
	default:
		m.println(line)
	}
	return nil
}

func (m *Menu) listAuthors(ctx context.Context) error {
	authors, err := m.svc.Authors.List(ctx)
	if err != nil {
		m.failed("Listing authors", err)
		return nil
	}

	if len(authors) == 0 {
		m.println("No authors found.")
		return nil
	}
	for _, a := range authors {
		m.printf("ID: %d, Name: %s, Biography: %s\n", a.ID, a.Name, a.Biography)
	}
	return nil
}
