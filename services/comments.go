package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"socialmedia/apperrors"
	"socialmedia/models"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(database *gorm.DB) *CommentService {
	return &CommentService{db: database}
}

// GetByPostID returns the post's comments oldest-first, each joined with
// its author.
func (cs *CommentService) GetByPostID(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	var comments []models.Comment
	err := cs.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for post %d: %w", postID, err)
	}
	return cs.assemble(ctx, comments)
}

// GetByID returns (nil, nil) when the comment does not exist.
func (cs *CommentService) GetByID(ctx context.Context, id int64) (*models.CommentWithAuthor, error) {
	var comments []models.Comment
	err := cs.db.WithContext(ctx).Where("id = ?", id).Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	if len(comments) == 0 {
		return nil, nil
	}

	withAuthors, err := cs.assemble(ctx, comments)
	if err != nil {
		return nil, err
	}
	return &withAuthors[0], nil
}

// Create inserts a comment on an existing post by an existing user.
func (cs *CommentService) Create(ctx context.Context, postID, userID int64, content string) (*models.Comment, error) {
	db := cs.db.WithContext(ctx)

	var postCount int64
	if err := db.Model(&models.Post{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check post %d: %w", postID, err)
	}
	if postCount == 0 {
		return nil, apperrors.NotFound("Post not found")
	}

	var userCount int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&userCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if userCount == 0 {
		return nil, apperrors.NotFound("User not found")
	}

	comment := &models.Comment{PostID: postID, UserID: userID, Content: content}
	if err := db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment, reporting whether a row was removed.
func (cs *CommentService) Delete(ctx context.Context, id int64) (bool, error) {
	result := cs.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete comment %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (cs *CommentService) assemble(ctx context.Context, comments []models.Comment) ([]models.CommentWithAuthor, error) {
	ids := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, comment := range comments {
		if !seen[comment.UserID] {
			seen[comment.UserID] = true
			ids = append(ids, comment.UserID)
		}
	}

	authors, err := loadAuthors(ctx, cs.db, ids)
	if err != nil {
		return nil, err
	}

	withAuthors := make([]models.CommentWithAuthor, 0, len(comments))
	for _, comment := range comments {
		withAuthors = append(withAuthors, models.CommentWithAuthor{
			Comment: comment,
			Author:  authors[comment.UserID],
		})
	}
	return withAuthors, nil
}
