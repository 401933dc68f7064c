package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-manager/internal/domains/author/model"
	"library-manager/internal/domains/author/service"
	"library-manager/internal/shared/response"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
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

// GetByName - GET /api/v1/authors/:name
func (h *AuthorHandler) GetByName(c *gin.Context) {
	author, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusOK, author)
}

// List - GET /api/v1/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{Total: len(authors)})
}
