package chat

import (
	"fmt"
	"log"
	"regexp"
	"strconv"

	"huddle/backend/internal/models"
)

var entryNumberRe = regexp.MustCompile(`(\d+)\.`)

// NextEntry appends "<n+1>. <username>" to a roster text, where n is the
// highest entry number already present. Returns ErrMalformedList when the
// text carries no numbered entries at all.
func NextEntry(text, username string) (string, error) {
	matches := entryNumberRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", ErrMalformedList
	}
	highest := 0
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s\n%d. %s", text, highest+1, username), nil
}

// JoinList appends the user to a roster list by inserting a new list
// message carrying the extended text. The referenced message itself is
// never mutated; the list's current state is always the newest list message
// in the room.
func (s *Service) JoinList(message, userID, username string, groupID uint) SendResult {
	// TODO: reject joining when the username is already on the list.
	updated, err := NextEntry(message, username)
	if err != nil {
		return SendResult{Error: "Fail to join group list."}
	}

	listMsg := &models.GroupMessage{
		GroupID:         groupID,
		CreatorID:       userID,
		CreatorUsername: username,
		Text:            updated,
		Kind:            models.KindList,
	}
	if err := s.Storage.SaveGroupMessage(listMsg); err != nil {
		log.Printf("ERROR: Failed to save list message in group %d: %v", groupID, err)
		return SendResult{Error: "Fail to join group list."}
	}
	return SendResult{Success: true}
}
