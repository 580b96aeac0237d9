package models

import "time"

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;index;not null" json:"postId"`
	UserID    int64     `gorm:"column:user_id;index;not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentWithAuthor struct {
	Comment
	Author User `json:"author"`
}
