package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-manager/internal/domains/genre/model"
	"library-manager/internal/domains/genre/service"
	"library-manager/internal/shared/response"
)

type GenreHandler struct {
	service service.Service
}

func NewGenreHandler(svc service.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// Create - POST /api/v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req model.CreateGenreRequest
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

// GetByName - GET /api/v1/genres/:name
func (h *GenreHandler) GetByName(c *gin.Context) {
	genre, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusOK, genre)
}

// List - GET /api/v1/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, genres, &response.Meta{Total: len(genres)})
}
