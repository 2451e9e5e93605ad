package handlers

import (
	"errors"
	"net/http"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type UserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=25,alphaname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=7,max=50"`
	Age      int    `json:"age" binding:"required,gt=12"`
	UserName string `json:"user_name" binding:"required,min=2,max=9"`
}

// ListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200 {array} models.User
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary      Fetch one user by id
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} models.User
// @Failure      404 {object} ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body UserRequest true "User data"
// @Success      201 {object} models.User
// @Failure      422 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Create(services.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		UserName: req.UserName,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Detail: "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary      Replace every field of a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body UserRequest true "User data"
// @Success      200 {object} models.User
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Update(id, services.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		UserName: req.UserName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "User not found"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Detail: "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to update user"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        id path int true "User ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}
