package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-manager/internal/domains/borrow/model"
	"library-manager/internal/domains/borrow/service"
	"library-manager/internal/shared/response"
)

// Authenticator resolves a library ID to a user id.
type Authenticator interface {
	Authenticate(ctx context.Context, libraryID string) (int64, error)
}

type BorrowHandler struct {
	service service.Service
	users   Authenticator
}

func NewBorrowHandler(svc service.Service, users Authenticator) *BorrowHandler {
	return &BorrowHandler{
		service: svc,
		users:   users,
	}
}

func (h *BorrowHandler) bindUser(c *gin.Context) (int64, bool) {
	var req model.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return 0, false
	}

	userID, err := h.users.Authenticate(c.Request.Context(), req.LibraryID)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return 0, false
	}
	return userID, true
}

// Borrow - POST /api/v1/books/:isbn/borrow
func (h *BorrowHandler) Borrow(c *gin.Context) {
	userID, ok := h.bindUser(c)
	if !ok {
		return
	}

	rec, err := h.service.Borrow(c.Request.Context(), userID, c.Param("isbn"))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusCreated, rec)
}

// Return - POST /api/v1/books/:isbn/return
func (h *BorrowHandler) Return(c *gin.Context) {
	userID, ok := h.bindUser(c)
	if !ok {
		return
	}

	isbn := c.Param("isbn")
	closed, err := h.service.Return(c.Request.Context(), userID, isbn)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusOK, model.ReturnResult{ISBN: isbn, Closed: closed})
}

// History - GET /api/v1/users/:library_id/borrows
func (h *BorrowHandler) History(c *gin.Context) {
	userID, err := h.users.Authenticate(c.Request.Context(), c.Param("library_id"))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	loans, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, loans, &response.Meta{Total: len(loans)})
}

// Outstanding - GET /api/v1/borrows/outstanding
func (h *BorrowHandler) Outstanding(c *gin.Context) {
	loans, err := h.service.Outstanding(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, loans, &response.Meta{Total: len(loans)})
}
