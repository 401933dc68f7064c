package cli

import (
	"context"
	"errors"

	"library-manager/internal/domains/genre/model"
)

func (m *Menu) genreMenu(ctx context.Context) error {
	return m.submenu(ctx, "Genre Operations", []action{
		{"Add a new genre", m.addGenre},
		{"View genre details", m.genreDetails},
		{"Display all genres", m.listGenres},
	})
}

func (m *Menu) addGenre(ctx context.Context) error {
	v, err := m.prompts("Enter genre name: ", "Enter genre description: ", "Enter genre category: ")
	if err != nil {
		return err
	}

	req := &model.CreateGenreRequest{Name: v[0], Description: v[1], Category: v[2]}
	if err := m.svc.Genres.Add(ctx, req); err != nil {
		m.failed("Adding genre", err)
		return nil
	}

	m.println("Genre added successfully.")
	return nil
}

func (m *Menu) genreDetails(ctx context.Context) error {
	name, err := m.prompt("Enter genre name: ")
	if err != nil {
		return err
	}

	line, err := m.svc.Genres.Describe(ctx, name)
	switch {
	case errors.Is(err, model.ErrGenreNotFound):
		m.println("Genre not found.")
	case err != nil:
		m.failed("Lookup", err)
	default:
		m.println(line)
	}
	return nil
}

func (m *Menu) listGenres(ctx context.Context) error {
	genres, err := m.svc.Genres.List(ctx)
	if err != nil {
		m.failed("Listing genres", err)
		return nil
	}

	if len(genres) == 0 {
		m.println("No genres found.")
		return nil
	}
	for _, g := range genres {
		m.printf("ID: %d, Name: %s, Description: %s, Category: %s\n", g.ID, g.Name, g.Description, g.Category)
	}
	return nil
}
