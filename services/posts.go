package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"socialmedia/apperrors"
	"socialmedia/models"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(database *gorm.DB) *PostService {
	return &PostService{db: database}
}

// postRow carries one post plus its aggregate counts, computed in a
// single query per list call instead of one COUNT query per post.
type postRow struct {
	ID            int64
	UserID        int64
	Content       string
	CreatedAt     time.Time
	LikesCount    int64
	CommentsCount int64
}

const postColumns = `posts.id, posts.user_id, posts.content, posts.created_at,
	(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count`

// GetAll returns all posts newest-first, each joined with its author and
// live like/comment counts. A limit of zero returns everything.
func (ps *PostService) GetAll(ctx context.Context, limit, offset int) ([]models.PostWithAuthor, error) {
	query := ps.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Order("posts.created_at DESC, posts.id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []postRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	return ps.assemble(ctx, rows)
}

// GetByUserID returns userID's posts newest-first. The user must exist.
func (ps *PostService) GetByUserID(ctx context.Context, userID int64) ([]models.PostWithAuthor, error) {
	var rows []postRow
	err := ps.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get posts for user %d: %w", userID, err)
	}
	return ps.assemble(ctx, rows)
}

// GetByID returns (nil, nil) when the post does not exist.
func (ps *PostService) GetByID(ctx context.Context, id int64) (*models.PostWithAuthor, error) {
	var rows []postRow
	err := ps.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Where("posts.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	posts, err := ps.assemble(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// Exists reports whether a post row with the given id is present.
func (ps *PostService) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := ps.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check post %d: %w", id, err)
	}
	return count > 0, nil
}

// Create inserts a post for an existing user and returns the stored row.
func (ps *PostService) Create(ctx context.Context, userID int64, content string) (*models.Post, error) {
	var userCount int64
	err := ps.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&userCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if userCount == 0 {
		return nil, apperrors.NotFound("User not found")
	}

	post := &models.Post{UserID: userID, Content: content}
	if err := ps.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Delete removes the post and reports whether a row was removed. The
// schema cascades the delete to the post's comments and likes.
func (ps *PostService) Delete(ctx context.Context, id int64) (bool, error) {
	result := ps.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete post %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (ps *PostService) assemble(ctx context.Context, rows []postRow) ([]models.PostWithAuthor, error) {
	ids := make([]int64, 0, len(rows))
	seen := make(map[int64]bool)
	for _, row := range rows {
		if !seen[row.UserID] {
			seen[row.UserID] = true
			ids = append(ids, row.UserID)
		}
	}

	authors, err := loadAuthors(ctx, ps.db, ids)
	if err != nil {
		return nil, err
	}

	posts := make([]models.PostWithAuthor, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, models.PostWithAuthor{
			Post: models.Post{
				ID:        row.ID,
				UserID:    row.UserID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
			},
			Author:        authors[row.UserID],
			LikesCount:    row.LikesCount,
			CommentsCount: row.CommentsCount,
		})
	}
	return posts, nil
}
