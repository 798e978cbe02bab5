package chat

import "log"

// SetOffline clears the user's online flag. Idempotent; there is no
// symmetric SetOnline here, online-marking is wired at the transport layer.
func (s *Service) SetOffline(userID string) SendResult {
	if err := s.Storage.SetUserOffline(userID); err != nil {
		log.Printf("ERROR: Failed to set user %s offline: %v", userID, err)
		return SendResult{Error: "Fail to set user offline."}
	}
	return SendResult{Success: true}
}
