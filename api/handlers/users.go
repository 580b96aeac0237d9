package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
	"socialmedia/api/schemas"
	"socialmedia/models"
)

// ListUsers returns all users newest-first; page/limit narrow the list
// when supplied.
func (h *Handlers) ListUsers(c *gin.Context) {
	pagination, err := schemas.ParsePagination(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	limit, offset := pagination.LimitOffset()
	users, err := h.Users.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handlers) CreateUser(c *gin.Context) {
	var req schemas.CreateUserRequest
	if err := schemas.Bind(c, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
	}
	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser returns the user profile with post/follower counts.
func (h *Handlers) GetUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	stats, err := h.Users.GetStats(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if stats == nil {
		apperrors.Respond(c, apperrors.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) GetUserPosts(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if user == nil {
		apperrors.Respond(c, apperrors.NotFound("User not found"))
		return
	}

	posts, err := h.Posts.GetByUserID(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
