package chat

import (
	"errors"
	"log"
	"strconv"

	"huddle/backend/internal/models"

	"gorm.io/gorm"
)

// CreatePoll inserts the poll row, then announces it to the room with one
// group message of kind "poll" whose body carries the generated poll id.
func (s *Service) CreatePoll(pollName string, groupID uint, userID, creatorUsername string) SendResult {
	poll := &models.Poll{
		GroupID:         groupID,
		Title:           pollName,
		CreatorID:       userID,
		CreatorUsername: creatorUsername,
	}
	if err := s.Storage.CreatePoll(poll); err != nil {
		log.Printf("ERROR: Failed to create poll in group %d: %v", groupID, err)
		return SendResult{Error: "Fail to create a group poll."}
	}

	announcement := &models.GroupMessage{
		GroupID:         groupID,
		CreatorID:       userID,
		CreatorUsername: creatorUsername,
		Text:            strconv.FormatUint(uint64(poll.ID), 10),
		Kind:            models.KindPoll,
	}
	if err := s.Storage.SaveGroupMessage(announcement); err != nil {
		log.Printf("ERROR: Failed to announce poll %d in group %d: %v", poll.ID, groupID, err)
		return SendResult{Error: "Fail to create a group poll."}
	}
	return SendResult{Success: true}
}

// SubmitVote records a boolean decision for the user. The single-vote
// invariant lives in the store's unique index; a duplicate-key error is the
// already-voted signal, not a preceding read.
func (s *Service) SubmitVote(pollID uint, userID string, decision bool) SendResult {
	resp := &models.PollResponse{
		PollID:  pollID,
		UserID:  userID,
		IsAgree: decision,
	}
	if err := s.Storage.SavePollResponse(resp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return SendResult{Error: "Can only vote one time!"}
		}
		log.Printf("ERROR: Failed to save vote on poll %d by %s: %v", pollID, userID, err)
		return SendResult{Error: "Fail to submit vote."}
	}
	return SendResult{Success: true}
}
