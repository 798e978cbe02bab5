package models

import "time"

// Message kinds for group messages. The kind is fixed once at creation from
// explicit caller intent; nothing downstream re-inspects the body text.
const (
	KindText = "text"
	KindList = "list"
	KindPoll = "poll"
)

// ListMarker prefixes a group-message body that the sender intends as a
// roster list. The transport boundary classifies on it exactly once.
const ListMarker = "#List"

// Message is a persisted message in a direct room. Immutable once created.
type Message struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ChatRoomID      uint      `gorm:"column:chatroom_id;index" json:"chatroom_id"`
	CreatorID       string    `gorm:"column:creator_id" json:"creator_id"`
	CreatorUsername string    `gorm:"column:creator_username" json:"creator_username"`
	Text            string    `gorm:"type:text;not null" json:"text"`
	CreatedAt       time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (Message) TableName() string { return "messages" }

// SentAt reports the server-assigned creation time.
func (m Message) SentAt() time.Time { return m.CreatedAt }

// GroupMessage is a persisted message in a group room. Unlike direct
// messages it carries a content kind: plain text, roster list, or poll
// announcement (body holds the poll id).
type GroupMessage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GroupID         uint      `gorm:"column:chatroom_id;index" json:"chatroom_id"`
	CreatorID       string    `gorm:"column:creator_id" json:"creator_id"`
	CreatorUsername string    `gorm:"column:creator_username" json:"creator_username"`
	Text            string    `gorm:"type:text;not null" json:"text"`
	Kind            string    `gorm:"column:type;not null" json:"type"`
	CreatedAt       time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (GroupMessage) TableName() string { return "group_messages" }

func (m GroupMessage) SentAt() time.Time { return m.CreatedAt }
