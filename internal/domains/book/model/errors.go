package model

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound           = errors.New("book not found")
	ErrDuplicateISBN          = errors.New("book with this ISBN already exists")
	ErrUnknownAuthor          = errors.New("author does not exist")
	ErrUnknownGenre           = errors.New("genre does not exist")
	ErrInvalidPublicationDate = errors.New("publication date must be YYYY-MM-DD")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateISBN):
		return "DUPLICATE_ISBN"
	case errors.Is(err, ErrUnknownAuthor):
		return "UNKNOWN_AUTHOR"
	case errors.Is(err, ErrUnknownGenre):
		return "UNKNOWN_GENRE"
	case errors.Is(err, ErrInvalidPublicationDate):
		return "INVALID_PUBLICATION_DATE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateISBN):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownAuthor),
		errors.Is(err, ErrUnknownGenre),
		errors.Is(err, ErrInvalidPublicationDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
