package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound  = errors.New("author not found")
	ErrDuplicateAuthor = errors.New("author with this name already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateAuthor):
		return "DUPLICATE_AUTHOR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateAuthor):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
