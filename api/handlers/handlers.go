package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialmedia/apperrors"
	"socialmedia/services"
)

// Handlers owns the query-layer services. Constructed once in the entry
// point and shared by every route.
type Handlers struct {
	Users     *services.UserService
	Posts     *services.PostService
	Comments  *services.CommentService
	Likes     *services.LikeService
	Followers *services.FollowerService
}

func New(users *services.UserService, posts *services.PostService, comments *services.CommentService, likes *services.LikeService, followers *services.FollowerService) *Handlers {
	return &Handlers{
		Users:     users,
		Posts:     posts,
		Comments:  comments,
		Likes:     likes,
		Followers: followers,
	}
}

// idParam parses a numeric path parameter; a non-integer yields a 400.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.Validation(fmt.Sprintf("Invalid %s parameter", name))
	}
	return id, nil
}
