package chat

import (
	"errors"
	"log"

	"huddle/backend/internal/models"

	"gorm.io/gorm"
)

// OpenChatRoom resolves the unique direct room between the two users,
// creating it on first contact. For an existing room the full history is
// loaded and bucketed by day; a freshly created room returns with an empty
// history. At most one insert happens; if a concurrent open wins the insert
// race the duplicate-key error is swallowed and the winner's row is reused.
func (s *Service) OpenChatRoom(currentUserID, targetUserID string) OpenRoomResult {
	result := OpenRoomResult{Messages: map[string][]models.Message{}}

	target, err := s.Storage.GetUserByID(targetUserID)
	if err != nil {
		log.Printf("ERROR: Failed to load target user %s: %v", targetUserID, err)
		result.Error = "Cannot open the chat room at the moment."
		return result
	}
	if target == nil {
		result.Error = "No target user found."
		return result
	}
	result.Receiver = target

	room, err := s.Storage.FindChatRoom(currentUserID, targetUserID)
	if err != nil {
		log.Printf("ERROR: Failed to find chat room for %s/%s: %v", currentUserID, targetUserID, err)
		result.Error = "Cannot open the chat room at the moment."
		return result
	}

	if room == nil {
		room = &models.ChatRoom{
			Type:    models.RoomTypePersonal,
			UserID1: currentUserID,
			UserID2: targetUserID,
		}
		err := s.Storage.CreateChatRoom(room)
		switch {
		case err == nil:
			// First contact: fresh room, nothing to load.
			result.ID = room.ID
			return result
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// A concurrent open inserted first; take that row instead.
			room, err = s.Storage.FindChatRoom(currentUserID, targetUserID)
			if err != nil || room == nil {
				log.Printf("ERROR: Lost room-create race for %s/%s and re-read failed: %v",
					currentUserID, targetUserID, err)
				result.Error = "Cannot open the chat room at the moment."
				return result
			}
		default:
			log.Printf("ERROR: Failed to create chat room for %s/%s: %v", currentUserID, targetUserID, err)
			result.Error = "Cannot open the chat room at the moment."
			return result
		}
	}

	result.ID = room.ID
	msgs, err := s.Storage.GetRoomMessages(room.ID)
	if err != nil {
		result.Error = "Cannot open the chat room at the moment."
		return result
	}
	result.Messages = GroupByDay(msgs)
	return result
}
