package models

import "time"

// Follower is a directed edge: follower_id follows following_id.
// One edge per ordered pair, never a self-loop.
type Follower struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;uniqueIndex:followers_pair_key;not null" json:"followerId"`
	FollowingID int64     `gorm:"column:following_id;uniqueIndex:followers_pair_key;not null" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Follower) TableName() string {
	return "followers"
}
