package storage

import (
	"context"
	"errors"
	"log"

	"huddle/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence surface the chat engines and the hub depend on.
// Absent rows come back as (nil, nil); only infrastructure failures are
// returned as errors, except for the duplicate-key signals called out below.
type Storage interface {
	GetUserByID(id string) (*models.User, error)
	SetUserOffline(id string) error

	FindChatRoom(userA, userB string) (*models.ChatRoom, error)
	// CreateChatRoom inserts a direct room for the pair. A concurrent insert
	// for the same pair surfaces as gorm.ErrDuplicatedKey; the caller should
	// re-run FindChatRoom to pick up the winner's row.
	CreateChatRoom(room *models.ChatRoom) error
	GetRoomMessages(roomID uint) ([]models.Message, error)
	SaveMessage(msg *models.Message) error

	GetGroupByID(id uint) (*models.Group, error)
	CountGroupMembers(groupID uint) (int64, error)
	GetGroupMessages(groupID uint) ([]models.GroupMessage, error)
	SaveGroupMessage(msg *models.GroupMessage) error

	CreatePoll(poll *models.Poll) error
	// SavePollResponse surfaces gorm.ErrDuplicatedKey when the user has
	// already voted on the poll.
	SavePollResponse(resp *models.PollResponse) error

	PublishEvent(ev models.OutboundEvent) error
}

// Service implements Storage over a process-wide PostgreSQL handle and a
// Redis client used for cross-instance event fan-out.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewService wires the shared connection handles. Each operation scopes its
// own session or transaction on them; nothing is opened per call.
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserOffline unconditionally clears the online flag. Idempotent.
func (s *Service) SetUserOffline(id string) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", id).
		Update("is_online", false).Error
}

// FindChatRoom matches the unordered pair in a single lookup, covering rows
// written before pair normalization existed.
func (s *Service) FindChatRoom(userA, userB string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.
		Where("(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)",
			userA, userB, userB, userA).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Service) CreateChatRoom(room *models.ChatRoom) error {
	// Normalize the pair so the unique index covers both orderings.
	if room.UserID2 < room.UserID1 {
		room.UserID1, room.UserID2 = room.UserID2, room.UserID1
	}
	return s.DB.Create(room).Error
}

func (s *Service) GetRoomMessages(roomID uint) ([]models.Message, error) {
	var msgs []models.Message
	if err := s.DB.Where("chatroom_id = ?", roomID).
		Order("timestamp asc").Find(&msgs).Error; err != nil {
		log.Printf("ERROR: Failed to load messages for room %d: %v", roomID, err)
		return nil, err
	}
	return msgs, nil
}

// SaveMessage inserts the message and repoints the room's last_message at
// the newest row, inside one transaction so neither write lands alone.
func (s *Service) SaveMessage(msg *models.Message) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		var top models.Message
		if err := tx.Where("chatroom_id = ?", msg.ChatRoomID).
			Order("timestamp desc, id desc").First(&top).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatRoom{}).
			Where("id = ?", msg.ChatRoomID).
			Update("last_message", top.ID).Error
	})
}

func (s *Service) GetGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	err := s.DB.Where("id = ?", id).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *Service) CountGroupMembers(groupID uint) (int64, error) {
	var count int64
	if err := s.DB.Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Service) GetGroupMessages(groupID uint) ([]models.GroupMessage, error) {
	var msgs []models.GroupMessage
	if err := s.DB.Where("chatroom_id = ?", groupID).
		Order("timestamp asc").Find(&msgs).Error; err != nil {
		log.Printf("ERROR: Failed to load messages for group %d: %v", groupID, err)
		return nil, err
	}
	return msgs, nil
}

// SaveGroupMessage is the group-side twin of SaveMessage: same two-step
// protocol against the group_messages table and the groups pointer.
func (s *Service) SaveGroupMessage(msg *models.GroupMessage) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		var top models.GroupMessage
		if err := tx.Where("chatroom_id = ?", msg.GroupID).
			Order("timestamp desc, id desc").First(&top).Error; err != nil {
			return err
		}
		return tx.Model(&models.Group{}).
			Where("id = ?", msg.GroupID).
			Update("last_message", top.ID).Error
	})
}

// CreatePoll inserts the poll row and leaves the generated id on poll.ID.
func (s *Service) CreatePoll(poll *models.Poll) error {
	return s.DB.Create(poll).Error
}

func (s *Service) SavePollResponse(resp *models.PollResponse) error {
	return s.DB.Create(resp).Error
}
