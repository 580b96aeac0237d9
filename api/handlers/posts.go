package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
	"socialmedia/api/schemas"
)

func (h *Handlers) ListPosts(c *gin.Context) {
	pagination, err := schemas.ParsePagination(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	limit, offset := pagination.LimitOffset()
	posts, err := h.Posts.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handlers) GetPost(c *gin.Context) {
	id, err := idParam(c, "postId")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	post, err := h.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if post == nil {
		apperrors.Respond(c, apperrors.NotFound("Post not found"))
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handlers) CreatePost(c *gin.Context) {
	var req schemas.CreatePostRequest
	if err := schemas.Bind(c, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	post, err := h.Posts.Create(c.Request.Context(), req.UserID, req.Content)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handlers) DeletePost(c *gin.Context) {
	id, err := idParam(c, "postId")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	deleted, err := h.Posts.Delete(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if !deleted {
		apperrors.Respond(c, apperrors.NotFound("Post not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
