package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialmedia/apperrors"
	"socialmedia/models"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(database *gorm.DB) *LikeService {
	return &LikeService{db: database}
}

func (ls *LikeService) Count(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := ls.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes for post %d: %w", postID, err)
	}
	return count, nil
}

func (ls *LikeService) HasUserLiked(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := ls.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like for post %d: %w", postID, err)
	}
	return count > 0, nil
}

// Toggle flips the like state for (postID, userID) and returns the new
// state plus the post's fresh total. The check and the opposite write
// run inside one transaction, with the unique index on
// (post_id, user_id) as the backstop against concurrent togglers.
func (ls *LikeService) Toggle(ctx context.Context, postID, userID int64) (liked bool, count int64, err error) {
	err = ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
			return fmt.Errorf("failed to check post %d: %w", postID, err)
		}
		if postCount == 0 {
			return apperrors.NotFound("Post not found")
		}

		var userCount int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&userCount).Error; err != nil {
			return fmt.Errorf("failed to check user %d: %w", userID, err)
		}
		if userCount == 0 {
			return apperrors.NotFound("User not found")
		}

		var existing int64
		err := tx.Model(&models.Like{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&existing).Error
		if err != nil {
			return fmt.Errorf("failed to check like state: %w", err)
		}

		if existing > 0 {
			err = tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{}).Error
			if err != nil {
				return fmt.Errorf("failed to remove like: %w", err)
			}
			liked = false
		} else {
			like := models.Like{PostID: postID, UserID: userID}
			err = tx.Create(&like).Error
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent toggle won the insert.
				return apperrors.Conflict("Like state changed concurrently")
			}
			if err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			liked = true
		}

		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// GetByPostID returns the post's likes newest-first.
func (ls *LikeService) GetByPostID(ctx context.Context, postID int64) ([]models.Like, error) {
	likes := []models.Like{}
	err := ls.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get likes for post %d: %w", postID, err)
	}
	return likes, nil
}
