package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
	"socialmedia/api/schemas"
)

// ListComments returns a post's comments oldest-first with authors.
func (h *Handlers) ListComments(c *gin.Context) {
	postID, err := idParam(c, "postId")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	exists, err := h.Posts.Exists(c.Request.Context(), postID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if !exists {
		apperrors.Respond(c, apperrors.NotFound("Post not found"))
		return
	}

	comments, err := h.Comments.GetByPostID(c.Request.Context(), postID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handlers) CreateComment(c *gin.Context) {
	postID, err := idParam(c, "postId")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	var req schemas.CreateCommentRequest
	if err := schemas.Bind(c, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	comment, err := h.Comments.Create(c.Request.Context(), postID, req.UserID, req.Content)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	deleted, err := h.Comments.Delete(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if !deleted {
		apperrors.Respond(c, apperrors.NotFound("Comment not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
