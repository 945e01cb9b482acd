package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sh-sahil/emp-repo/dto"
)

// UserRegistry is the slice of the user store the registration endpoint
// needs; the full account lifecycle lives with the auth collaborator.
type UserRegistry interface {
	CreateUser(ctx context.Context, name, company string) (*dto.User, error)
}

type UserHandler struct {
	users UserRegistry
}

func NewUserHandler(users UserRegistry) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "USER_FAILED", "Invalid request body", err)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.Name, req.Company)
	if err != nil {
		sendError(c, statusFor(err), "USER_FAILED", "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
