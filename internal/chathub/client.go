package chathub

import (
	"fmt"

	"huddle/backend/internal/models"
)

// Client is one active connection, whatever its transport. The hub manages
// clients uniformly through this interface.
type Client interface {
	// GetUserID returns the authenticated user behind the connection.
	GetUserID() string

	// TrySend queues an outbound event without blocking. It reports false
	// when the connection is closed or its buffer is full; either way the
	// call is safe after Close, from any goroutine.
	TrySend(ev models.OutboundEvent) bool

	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts down the connection's send side. Idempotent.
	Close()
}

// RoomKey is the subscription key of a direct room.
func RoomKey(roomID uint) string { return fmt.Sprintf("room:%d", roomID) }

// GroupKey is the subscription key of a group room.
func GroupKey(groupID uint) string { return fmt.Sprintf("group:%d", groupID) }
