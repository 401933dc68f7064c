package model

import (
	"errors"
	"net/http"
)

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrDuplicateGenre = errors.New("genre with this name already exists")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return "GENRE_NOT_FOUND"
	case errors.Is(err, ErrDuplicateGenre):
		return "DUPLICATE_GENRE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateGenre):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
