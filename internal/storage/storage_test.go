package storage_test

import (
	"fmt"
	"testing"

	"huddle/backend/internal/models"
	"huddle/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newDBService opens an in-memory database private to the test. Tables are
// limited to what the direct-room and poll paths touch, so the pg-specific
// array column on groups stays out of the way.
func newDBService(t *testing.T) *storage.Service {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ChatRoom{},
		&models.Message{},
		&models.Poll{},
		&models.PollResponse{},
	))
	return storage.NewService(db, nil)
}

// TestFindChatRoom_SymmetricLookup: both orderings of the pair resolve to
// the one room.
func TestFindChatRoom_SymmetricLookup(t *testing.T) {
	// Arrange
	s := newDBService(t)
	room := &models.ChatRoom{Type: models.RoomTypePersonal, UserID1: "bob", UserID2: "alice"}
	require.NoError(t, s.CreateChatRoom(room))

	// Act
	forward, err1 := s.FindChatRoom("alice", "bob")
	reverse, err2 := s.FindChatRoom("bob", "alice")

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, forward.ID, reverse.ID)
}

func TestFindChatRoom_AbsentPair(t *testing.T) {
	s := newDBService(t)

	room, err := s.FindChatRoom("nobody", "noone")

	assert.NoError(t, err)
	assert.Nil(t, room)
}

// TestCreateChatRoom_DuplicatePairRejected: the normalized pair index makes
// a second insert fail regardless of argument order, which is the signal
// the resolver uses to pick up the winner's row.
func TestCreateChatRoom_DuplicatePairRejected(t *testing.T) {
	// Arrange
	s := newDBService(t)
	require.NoError(t, s.CreateChatRoom(
		&models.ChatRoom{Type: models.RoomTypePersonal, UserID1: "u1", UserID2: "u2"}))

	// Act - reversed ordering still collides
	err := s.CreateChatRoom(
		&models.ChatRoom{Type: models.RoomTypePersonal, UserID1: "u2", UserID2: "u1"})

	// Assert
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	s.DB.Model(&models.ChatRoom{}).Count(&count)
	assert.Equal(t, int64(1), count, "exactly one room per pair")
}

// TestSaveMessage_PointerTracksLatest: after N sequential inserts the
// room's last_message pointer names the Nth message.
func TestSaveMessage_PointerTracksLatest(t *testing.T) {
	// Arrange
	s := newDBService(t)
	room := &models.ChatRoom{Type: models.RoomTypePersonal, UserID1: "u1", UserID2: "u2"}
	require.NoError(t, s.CreateChatRoom(room))

	// Act
	var last uint
	for i := 1; i <= 3; i++ {
		msg := &models.Message{
			ChatRoomID:      room.ID,
			CreatorID:       "u1",
			CreatorUsername: "alice",
			Text:            fmt.Sprintf("message %d", i),
		}
		require.NoError(t, s.SaveMessage(msg))
		last = msg.ID
	}

	// Assert
	var reloaded models.ChatRoom
	require.NoError(t, s.DB.First(&reloaded, room.ID).Error)
	require.NotNil(t, reloaded.LastMessage)
	assert.Equal(t, last, *reloaded.LastMessage)

	msgs, err := s.GetRoomMessages(room.ID)
	assert.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "message 1", msgs[0].Text, "history comes back oldest first")
	assert.Equal(t, "message 3", msgs[2].Text)
}

// TestSavePollResponse_UniquePerPollAndUser pins the single-vote invariant
// at the store layer.
func TestSavePollResponse_UniquePerPollAndUser(t *testing.T) {
	// Arrange
	s := newDBService(t)
	poll := &models.Poll{GroupID: 1, Title: "Lunch?", CreatorID: "u1", CreatorUsername: "dee"}
	require.NoError(t, s.CreatePoll(poll))
	assert.NotZero(t, poll.ID, "generated id must be reported back")

	require.NoError(t, s.SavePollResponse(
		&models.PollResponse{PollID: poll.ID, UserID: "u2", IsAgree: true}))

	// Act - same user, opposite decision
	err := s.SavePollResponse(
		&models.PollResponse{PollID: poll.ID, UserID: "u2", IsAgree: false})

	// Assert
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	s.DB.Model(&models.PollResponse{}).Where("poll_id = ?", poll.ID).Count(&count)
	assert.Equal(t, int64(1), count, "no second response persisted")

	// A different user still votes fine.
	assert.NoError(t, s.SavePollResponse(
		&models.PollResponse{PollID: poll.ID, UserID: "u3", IsAgree: false}))
}

func TestSetUserOffline_Idempotent(t *testing.T) {
	// Arrange
	s := newDBService(t)
	user := &models.User{Username: "carol", IsOnline: true}
	require.NoError(t, s.DB.Create(user).Error)

	// Act
	assert.NoError(t, s.SetUserOffline(user.ID))
	assert.NoError(t, s.SetUserOffline(user.ID))

	// Assert
	reloaded, err := s.GetUserByID(user.ID)
	assert.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.False(t, reloaded.IsOnline)
}
