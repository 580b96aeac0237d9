package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
	"socialmedia/api/middleware"
	"socialmedia/api/schemas"
	"socialmedia/models"
)

func (h *Handlers) GetFollowers(c *gin.Context) {
	h.listEdges(c, h.Followers.GetFollowers, "followers")
}

func (h *Handlers) GetFollowing(c *gin.Context) {
	h.listEdges(c, h.Followers.GetFollowing, "following")
}

func (h *Handlers) listEdges(c *gin.Context, resolve func(ctx context.Context, userID int64) ([]models.User, error), key string) {
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

	users, err := resolve(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": id, key: users, "count": len(users)})
}

// FollowUser creates the follow edge from the request body's follower
// to the path user.
func (h *Handlers) FollowUser(c *gin.Context) {
	followingID, err := idParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	var req schemas.FollowRequest
	if err := schemas.Bind(c, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}
	if err := req.CheckTarget(followingID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	edge, err := h.Followers.Follow(c.Request.Context(), req.FollowerID, followingID)
	if err != nil {
		middleware.RecordFollowOp("follow", "error")
		apperrors.Respond(c, err)
		return
	}

	middleware.RecordFollowOp("follow", "ok")
	c.JSON(http.StatusCreated, edge)
}

// UnfollowUser removes the edge; 404 when it never existed.
func (h *Handlers) UnfollowUser(c *gin.Context) {
	followingID, err := idParam(c, "id")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	var req schemas.FollowRequest
	if err := schemas.Bind(c, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	removed, err := h.Followers.Unfollow(c.Request.Context(), req.FollowerID, followingID)
	if err != nil {
		middleware.RecordFollowOp("unfollow", "error")
		apperrors.Respond(c, err)
		return
	}
	if !removed {
		apperrors.Respond(c, apperrors.NotFound("Not following this user"))
		return
	}

	middleware.RecordFollowOp("unfollow", "ok")
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}
