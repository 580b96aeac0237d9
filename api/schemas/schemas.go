// Package schemas declares the request payload constraints enforced
// before any query-layer call runs.
package schemas

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"socialmedia/apperrors"
)

type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=30"`
	Email     string  `json:"email" binding:"required,email"`
	FirstName string  `json:"firstName" binding:"required,min=1,max=50"`
	LastName  string  `json:"lastName" binding:"required,min=1,max=50"`
	Avatar    *string `json:"avatar" binding:"omitempty,url"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
	UserID  int64  `json:"userId" binding:"required,gt=0"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
	UserID  int64  `json:"userId" binding:"required,gt=0"`
}

type LikeRequest struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
}

type FollowRequest struct {
	FollowerID int64 `json:"followerId" binding:"required,gt=0"`
}

// CheckTarget rejects a self-follow at the schema level. The query
// layer re-checks the same rule; both are kept on purpose.
func (r FollowRequest) CheckTarget(followingID int64) error {
	if r.FollowerID == followingID {
		return apperrors.Validation("User cannot follow themselves",
			apperrors.FieldError{Field: "followerId", Rule: "nefield"})
	}
	return nil
}

// Bind decodes the JSON body into dst and converts binding failures
// into a validation error with per-field detail.
func Bind(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]apperrors.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, apperrors.FieldError{
					Field: fe.Field(),
					Rule:  fe.ActualTag(),
				})
			}
			return apperrors.Validation("Validation error", fields...)
		}
		return apperrors.Validation("Invalid request body")
	}
	return nil
}
