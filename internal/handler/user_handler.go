package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkmark/internal/pkg/response"
	"linkmark/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

type editUserRequest struct {
	FirstName nullableString `json:"first_name"`
	LastName  nullableString `json:"last_name"`
}

func (h *UserHandler) Edit(c *gin.Context) {
	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	var patch service.UserPatch
	if req.FirstName.set {
		// null clears the optional field
		patch.FirstName = &req.FirstName.value
	}
	if req.LastName.set {
		patch.LastName = &req.LastName.value
	}
	user, err := h.users.Update(c.Request.Context(), getUserID(c), patch)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}
