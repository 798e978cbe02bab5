package chat

import (
	"log"
	"regexp"

	"huddle/backend/internal/models"
)

var listMarkerRe = regexp.MustCompile(`^` + models.ListMarker + `\b`)

// ClassifyKind fixes a group message's content kind from the sender's text,
// exactly once, at the send boundary. Storage never re-inspects the body.
func ClassifyKind(text string) string {
	if listMarkerRe.MatchString(text) {
		return models.KindList
	}
	return models.KindText
}

// InsertMessage persists a direct message and repoints the room's
// last-message pointer. Both writes commit together or not at all.
func (s *Service) InsertMessage(chatRoomID uint, creatorUsername, text, senderUserID string) SendResult {
	msg := &models.Message{
		ChatRoomID:      chatRoomID,
		CreatorID:       senderUserID,
		CreatorUsername: creatorUsername,
		Text:            text,
	}
	if err := s.Storage.SaveMessage(msg); err != nil {
		log.Printf("ERROR: Failed to save message in room %d: %v", chatRoomID, err)
		return SendResult{Error: "Fail to send message!"}
	}
	return SendResult{Success: true}
}

// InsertGroupMessage persists a group message with an explicit content kind,
// following the same two-step protocol against the groups pointer.
func (s *Service) InsertGroupMessage(groupID uint, creatorUsername, text, senderUserID, kind string) SendResult {
	msg := &models.GroupMessage{
		GroupID:         groupID,
		CreatorID:       senderUserID,
		CreatorUsername: creatorUsername,
		Text:            text,
		Kind:            kind,
	}
	if err := s.Storage.SaveGroupMessage(msg); err != nil {
		log.Printf("ERROR: Failed to save message in group %d: %v", groupID, err)
		return SendResult{Error: "Fail to send message!"}
	}
	return SendResult{Success: true}
}
