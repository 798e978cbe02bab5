package models

import "github.com/lib/pq"

// Group is a persisted multi-party conversation. Membership lives in the
// group_members relation; this core only counts it.
type Group struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	LastMessage *uint          `gorm:"column:last_message" json:"last_message"`
}

func (Group) TableName() string { return "groups" }

// GroupMember links a user to a group.
type GroupMember struct {
	GroupID uint   `gorm:"primaryKey;column:group_id" json:"group_id"`
	UserID  string `gorm:"primaryKey;column:user_id" json:"user_id"`
}

func (GroupMember) TableName() string { return "group_members" }
