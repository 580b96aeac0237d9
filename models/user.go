package models

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:30;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255" json:"email"`
	FirstName string    `gorm:"size:50" json:"firstName"`
	LastName  string    `gorm:"size:50" json:"lastName"`
	Avatar    *string   `gorm:"size:500" json:"avatar"`
	Bio       *string   `gorm:"size:500" json:"bio"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// UserWithStats is the profile view: the user plus live counts over
// posts and follower edges.
type UserWithStats struct {
	User
	PostsCount     int64 `json:"postsCount"`
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}
