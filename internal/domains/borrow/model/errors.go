package model

import (
	"errors"
	"net/http"

	bookmodel "library-manager/internal/domains/book/model"
	usermodel "library-manager/internal/domains/user/model"
)

var (
	ErrBookUnavailable = errors.New("book is already borrowed")
	ErrNoOpenBorrow    = errors.New("no open borrow record")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookUnavailable):
		return "BOOK_UNAVAILABLE"
	case errors.Is(err, bookmodel.ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, usermodel.ErrUserNotFound):
		return "USER_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookUnavailable):
		return http.StatusConflict
	case errors.Is(err, bookmodel.ErrBookNotFound),
		errors.Is(err, usermodel.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
