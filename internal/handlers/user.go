package handlers

import (
	"context"
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/adriagil/placelog-api/internal/models"
	"github.com/adriagil/placelog-api/internal/services"
	"github.com/adriagil/placelog-api/pkg/dto"
)

type UserHandler struct {
	userService UserServiceInterface
}

func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *drift.Context) {
	users, err := h.userService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list users")
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i, user := range users {
		response[i] = toUserResponse(&user)
	}

	_ = c.JSON(200, response)
}

func (h *UserHandler) Create(c *drift.Context) {
	var req dto.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ID == "" {
		c.BadRequest("id is required")
		return
	}
	if req.Email == "" {
		c.BadRequest("email is required")
		return
	}
	if req.ExpiresAt.IsZero() {
		c.BadRequest("expires_at is required")
		return
	}

	user := &models.User{
		ID:        req.ID,
		Email:     req.Email,
		ExpiresAt: req.ExpiresAt,
		Alias:     req.Alias,
		AvatarURL: req.AvatarURL,
	}
	if req.LoginAt != nil {
		user.LoginAt = *req.LoginAt
	}

	created, err := h.userService.Create(context.Background(), user)
	if err != nil {
		c.InternalServerError("failed to create user")
		return
	}

	_ = c.JSON(201, toUserResponse(created))
}

func (h *UserHandler) Get(c *drift.Context) {
	user, err := h.userService.GetByID(context.Background(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to get user")
		return
	}

	_ = c.JSON(200, toUserResponse(user))
}

func (h *UserHandler) Update(c *drift.Context) {
	var req dto.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	patch := services.UserPatch{
		Alias:     req.Alias,
		AvatarURL: req.AvatarURL,
		ExpiresAt: req.ExpiresAt,
	}

	updated, err := h.userService.Update(context.Background(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "failed to update user")
		return
	}

	_ = c.JSON(200, toUserResponse(updated))
}

func (h *UserHandler) Delete(c *drift.Context) {
	if err := h.userService.Delete(context.Background(), c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete user")
		return
	}

	c.Response.WriteHeader(http.StatusNoContent)
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		LoginAt:   user.LoginAt,
		ExpiresAt: user.ExpiresAt,
		Alias:     user.Alias,
		AvatarURL: user.AvatarURL,
	}
}
