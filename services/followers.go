package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialmedia/apperrors"
	"socialmedia/models"
)

type FollowerService struct {
	db *gorm.DB
}

func NewFollowerService(database *gorm.DB) *FollowerService {
	return &FollowerService{db: database}
}

// GetFollowers resolves the users following userID. An edge pointing at
// a missing user is an integrity error.
func (fs *FollowerService) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	return fs.resolveEdges(ctx, "following_id = ?", userID, "follower_id")
}

// GetFollowing resolves the users userID follows.
func (fs *FollowerService) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	return fs.resolveEdges(ctx, "follower_id = ?", userID, "following_id")
}

func (fs *FollowerService) resolveEdges(ctx context.Context, condition string, userID int64, column string) ([]models.User, error) {
	var ids []int64
	err := fs.db.WithContext(ctx).Model(&models.Follower{}).
		Where(condition, userID).
		Order("created_at DESC, id DESC").
		Pluck(column, &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get follower edges for user %d: %w", userID, err)
	}

	authors, err := loadAuthors(ctx, fs.db, ids)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, authors[id])
	}
	return users, nil
}

func (fs *FollowerService) FollowersCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := fs.db.WithContext(ctx).Model(&models.Follower{}).
		Where("following_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count followers for user %d: %w", userID, err)
	}
	return count, nil
}

func (fs *FollowerService) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := fs.db.WithContext(ctx).Model(&models.Follower{}).
		Where("follower_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count following for user %d: %w", userID, err)
	}
	return count, nil
}

// IsFollowing reports whether followerID follows followingID. A
// self-loop is definitionally not following, regardless of store state.
func (fs *FollowerService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	if followerID == followingID {
		return false, nil
	}

	var count int64
	err := fs.db.WithContext(ctx).Model(&models.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}
	return count > 0, nil
}

// Follow creates the edge followerID→followingID. Self-follows and
// duplicate edges fail; the check and insert share a transaction with
// the unique pair index as the backstop.
func (fs *FollowerService) Follow(ctx context.Context, followerID, followingID int64) (*models.Follower, error) {
	if followerID == followingID {
		return nil, apperrors.Validation("User cannot follow themselves")
	}

	var edge *models.Follower
	err := fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userCount int64
		err := tx.Model(&models.User{}).Where("id IN ?", []int64{followerID, followingID}).Count(&userCount).Error
		if err != nil {
			return fmt.Errorf("failed to check users: %w", err)
		}
		if userCount != 2 {
			return apperrors.NotFound("User not found")
		}

		var existing int64
		err = tx.Model(&models.Follower{}).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Count(&existing).Error
		if err != nil {
			return fmt.Errorf("failed to check follow state: %w", err)
		}
		if existing > 0 {
			return apperrors.Conflict("Already following this user")
		}

		edge = &models.Follower{FollowerID: followerID, FollowingID: followingID}
		err = tx.Create(edge).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Already following this user")
		}
		if err != nil {
			return fmt.Errorf("failed to create follow edge: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return edge, nil
}

// Unfollow removes the edge if present, reporting whether a row was
// removed. Unfollowing someone never followed is not an error.
func (fs *FollowerService) Unfollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	result := fs.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follower{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
