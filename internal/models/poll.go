package models

import "time"

// Poll is a group-scoped question users vote on with a boolean decision.
type Poll struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GroupID         uint      `gorm:"column:group_id;index" json:"group_id"`
	Title           string    `gorm:"not null" json:"title"`
	CreatorID       string    `gorm:"column:creator_id" json:"creator_id"`
	CreatorUsername string    `gorm:"column:creator_username" json:"creator_username"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Poll) TableName() string { return "group_polls" }

// PollResponse records one user's vote. The composite unique index is the
// single-vote invariant: a second insert for the same (poll, user) fails
// with a duplicate-key error regardless of handler interleaving.
type PollResponse struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PollID  uint   `gorm:"column:poll_id;uniqueIndex:idx_poll_voter" json:"poll_id"`
	UserID  string `gorm:"column:user_id;uniqueIndex:idx_poll_voter" json:"user_id"`
	IsAgree bool   `gorm:"column:is_agree" json:"is_agree"`
}

func (PollResponse) TableName() string { return "group_poll_responses" }
