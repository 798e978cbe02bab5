package chat

import (
	"log"

	"huddle/backend/internal/models"
)

// OpenGroupRoom assembles a group snapshot from three independent reads:
// metadata, member count, and the day-bucketed message history. Assembly is
// best-effort: an absent group row is not a failure, and a failed read
// leaves the other fields populated from their own reads.
func (s *Service) OpenGroupRoom(groupID uint) OpenGroupResult {
	result := OpenGroupResult{Messages: map[string][]models.GroupMessage{}}

	group, err := s.Storage.GetGroupByID(groupID)
	if err != nil {
		log.Printf("ERROR: Failed to load group %d: %v", groupID, err)
		result.Error = "Cannot get group room info!"
	} else {
		result.Group = group
	}

	count, err := s.Storage.CountGroupMembers(groupID)
	if err != nil {
		log.Printf("ERROR: Failed to count members of group %d: %v", groupID, err)
		result.Error = "Cannot get group room info!"
	} else {
		result.TotalMembers = count
	}

	msgs, err := s.Storage.GetGroupMessages(groupID)
	if err != nil {
		result.Error = "Cannot get group room info!"
	} else {
		result.Messages = GroupByDay(msgs)
	}

	return result
}
