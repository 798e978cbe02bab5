// Package chat holds the room-resolution, message-persistence and
// group-feature engines. Every public operation converts storage and
// business failures into a result value; nothing here panics or lets a raw
// error escape to the transport layer.
package chat

import (
	"errors"

	"huddle/backend/internal/models"
	"huddle/backend/internal/storage"
)

var (
	// ErrMalformedList means a roster text contained no numbered entries.
	ErrMalformedList = errors.New("list has no numbered entries")
)

// Service exposes the chat engines over the storage surface.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// OpenRoomResult is the snapshot returned when a direct room is opened.
type OpenRoomResult struct {
	ID       uint                        `json:"id"`
	Receiver *models.User                `json:"receiver,omitempty"`
	Messages map[string][]models.Message `json:"messages"`
	Error    string                      `json:"error,omitempty"`
}

// SendResult reports the outcome of a single write operation.
type SendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OpenGroupResult is the snapshot returned when a group room is opened.
// Group is nil when the group row is absent; the other fields are still
// populated from their own reads.
type OpenGroupResult struct {
	Group        *models.Group                    `json:"group,omitempty"`
	TotalMembers int64                            `json:"totalMember"`
	Messages     map[string][]models.GroupMessage `json:"messages"`
	Error        string                           `json:"error,omitempty"`
}
