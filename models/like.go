package models

import "time"

// Like records that a user liked a post. The (post_id, user_id) pair is
// unique: the index backstops the toggle transaction against concurrent
// double-inserts.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;uniqueIndex:likes_post_user_key;not null" json:"postId"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:likes_post_user_key;not null" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
