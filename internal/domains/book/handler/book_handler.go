package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/domains/book/service"
	"library-manager/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Add(c.Request.Context(), &req); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusCreated, req)
}

// GetByISBN - GET /api/v1/books/:isbn
func (h *BookHandler) GetByISBN(c *gin.Context) {
	details, err := h.service.GetDetails(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusOK, details)
}

// List - GET /api/v1/books?title=...
// With a title query the list is a substring search.
func (h *BookHandler) List(c *gin.Context) {
	var (
		books []model.Book
		err   error
	)

	if title, ok := c.GetQuery("title"); ok {
		books, err = h.service.Search(c.Request.Context(), title)
	} else {
		books, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}
