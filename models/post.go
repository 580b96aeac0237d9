package models

import "time"

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;index;not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Post) TableName() string {
	return "posts"
}

// PostWithAuthor is the read-time composite: the post joined with its
// author and live like/comment counts. A missing author is a
// referential-integrity error, never silently skipped.
type PostWithAuthor struct {
	Post
	Author        User  `json:"author"`
	LikesCount    int64 `json:"likesCount"`
	CommentsCount int64 `json:"commentsCount"`
}
