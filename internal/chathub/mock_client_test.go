package chathub_test

import (
	"sync"

	"huddle/backend/internal/models"
)

// MockClient is a channel-backed Client for hub tests.
type MockClient struct {
	userID string
	send   chan models.OutboundEvent

	mu     sync.Mutex
	closed bool
}

func newMockClient(userID string) *MockClient {
	return &MockClient{
		userID: userID,
		send:   make(chan models.OutboundEvent, 16),
	}
}

func (c *MockClient) GetUserID() string { return c.userID }

func (c *MockClient) TrySend(ev models.OutboundEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

func (c *MockClient) Run() {}

func (c *MockClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *MockClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
