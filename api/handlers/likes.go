package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
	"socialmedia/api/middleware"
	"socialmedia/api/schemas"
)

// GetLikes returns the like count for a post.
func (h *Handlers) GetLikes(c *gin.Context) {
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

	count, err := h.Likes.Count(c.Request.Context(), postID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"postId": postID, "likesCount": count})
}

// ToggleLike flips the caller's like on a post and returns the new
// state plus the fresh total.
func (h *Handlers) ToggleLike(c *gin.Context) {
	postID, err := idParam(c, "postId")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	var req schemas.LikeRequest
	if err := schemas.Bind(c, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	liked, count, err := h.Likes.Toggle(c.Request.Context(), postID, req.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	middleware.RecordLikeToggle(liked)
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likesCount": count})
}
