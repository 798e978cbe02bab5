package chathub_test

import (
	"huddle/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage mocks storage.Storage for hub tests.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) SetUserOffline(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) FindChatRoom(userA, userB string) (*models.ChatRoom, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRoom), args.Error(1)
}

func (m *MockStorage) CreateChatRoom(room *models.ChatRoom) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockStorage) GetRoomMessages(roomID uint) ([]models.Message, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStorage) SaveMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetGroupByID(id uint) (*models.Group, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockStorage) CountGroupMembers(groupID uint) (int64, error) {
	args := m.Called(groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) GetGroupMessages(groupID uint) ([]models.GroupMessage, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GroupMessage), args.Error(1)
}

func (m *MockStorage) SaveGroupMessage(msg *models.GroupMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) CreatePoll(poll *models.Poll) error {
	args := m.Called(poll)
	return args.Error(0)
}

func (m *MockStorage) SavePollResponse(resp *models.PollResponse) error {
	args := m.Called(resp)
	return args.Error(0)
}

func (m *MockStorage) PublishEvent(ev models.OutboundEvent) error {
	args := m.Called(ev)
	return args.Error(0)
}
