package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialmedia/apperrors"
	"socialmedia/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(database *gorm.DB) *UserService {
	return &UserService{db: database}
}

// GetAll returns users ordered newest-first. A limit of zero returns
// everything.
func (us *UserService) GetAll(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := us.db.WithContext(ctx).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	users := []models.User{}
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// GetByID returns (nil, nil) when the user does not exist.
func (us *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := us.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (us *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := us.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return &user, nil
}

func (us *UserService) Create(ctx context.Context, user *models.User) error {
	err := us.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("Username already taken")
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (us *UserService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := us.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GetStats returns the user together with post and follower-edge counts,
// or (nil, nil) when the user does not exist.
func (us *UserService) GetStats(ctx context.Context, id int64) (*models.UserWithStats, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	stats := models.UserWithStats{User: *user}
	db := us.db.WithContext(ctx)
	if err := db.Model(&models.Post{}).Where("user_id = ?", id).Count(&stats.PostsCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count posts for user %d: %w", id, err)
	}
	if err := db.Model(&models.Follower{}).Where("following_id = ?", id).Count(&stats.FollowersCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count followers for user %d: %w", id, err)
	}
	if err := db.Model(&models.Follower{}).Where("follower_id = ?", id).Count(&stats.FollowingCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count following for user %d: %w", id, err)
	}
	return &stats, nil
}

// loadAuthors batch-loads the users referenced by ids into a map. Every
// id must resolve: a miss means a row references a deleted user, which
// is surfaced as an integrity error rather than silently dropped.
func loadAuthors(ctx context.Context, database *gorm.DB, ids []int64) (map[int64]models.User, error) {
	authors := make(map[int64]models.User, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	var users []models.User
	if err := database.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, user := range users {
		authors[user.ID] = user
	}
	for _, id := range ids {
		if _, ok := authors[id]; !ok {
			return nil, apperrors.Integrity(fmt.Sprintf("referenced user %d not found", id))
		}
	}
	return authors, nil
}
