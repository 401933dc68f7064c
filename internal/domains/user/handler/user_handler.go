package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-manager/internal/domains/user/model"
	"library-manager/internal/domains/user/service"
	"library-manager/internal/shared/response"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Create - POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
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

// GetByLibraryID - GET /api/v1/users/:library_id
func (h *UserHandler) GetByLibraryID(c *gin.Context) {
	user, err := h.service.GetByLibraryID(c.Request.Context(), c.Param("library_id"))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// List - GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{Total: len(users)})
}
