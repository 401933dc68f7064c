// Package cli is the interactive text menu over the catalog services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	authorService "library-manager/internal/domains/author/service"
	bookService "library-manager/internal/domains/book/service"
	borrowService "library-manager/internal/domains/borrow/service"
	genreService "library-manager/internal/domains/genre/service"
	userService "library-manager/internal/domains/user/service"
)

// Services are the operations the menu dispatches to.
type Services struct {
	Books   bookService.Service
	Users   userService.Service
	Authors authorService.Service
	Genres  genreService.Service
	Borrows borrowService.Service
}

// Menu reads one choice or value per line from in and writes to out.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer
	svc Services
}

func New(in io.Reader, out io.Writer, svc Services) *Menu {
	return &Menu{
		in:  bufio.NewScanner(in),
		out: out,
		svc: svc,
	}
}

const mainMenu = `
Library Management System
1. Book Operations
2. User Operations
3. Author Operations
4. Genre Operations
5. Exit`

// Run shows the main menu until the user exits, input ends or ctx is done.
// Quitting and end of input are both a normal return.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m.println(mainMenu)
		choice, err := m.prompt("Enter your choice: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = m.bookMenu(ctx)
		case "2":
			err = m.userMenu(ctx)
		case "3":
			err = m.authorMenu(ctx)
		case "4":
			err = m.genreMenu(ctx)
		case "5":
			m.println("Goodbye!")
			return nil
		default:
			m.println("Invalid choice. Please try again.")
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

// action is one submenu entry. It returns an error only when input fails.
type action struct {
	label string
	run   func(context.Context) error
}

func (m *Menu) submenu(ctx context.Context, title string, actions []action) error {
	m.println("\n" + title)
	for i, a := range actions {
		m.printf("%d. %s\n", i+1, a.label)
	}

	choice, err := m.prompt("Enter your choice: ")
	if err != nil {
		return err
	}

	for i, a := range actions {
		if choice == fmt.Sprint(i+1) {
			return a.run(ctx)
		}
	}

	m.println("Invalid choice.")
	return nil
}

// prompt writes label and returns the next trimmed line, or io.EOF.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// prompts reads several values in order.
func (m *Menu) prompts(labels ...string) ([]string, error) {
	values := make([]string, len(labels))
	for i, label := range labels {
		v, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// failed reports a failed operation with its reason.
func (m *Menu) failed(what string, err error) {
	m.printf("%s failed: %v\n", what, err)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
