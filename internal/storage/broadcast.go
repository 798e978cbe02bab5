package storage

import (
	"encoding/json"
	"log"

	"huddle/backend/internal/models"
)

// broadcastChannel is the Redis Pub/Sub channel every instance publishes
// outbound events on and subscribes to.
const broadcastChannel = "chat:broadcast"

// PublishEvent fans an outbound event out to every running instance.
func (s *Service) PublishEvent(ev models.OutboundEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, broadcastChannel, payload).Err()
}

// SubscribeEvents subscribes to the broadcast channel and decodes incoming
// frames onto the returned channel. Undecodable frames are logged and
// skipped. The goroutine exits when the subscription is closed.
func (s *Service) SubscribeEvents() (<-chan models.OutboundEvent, func() error) {
	pubsub := s.Redis.Subscribe(s.Ctx, broadcastChannel)
	out := make(chan models.OutboundEvent)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var ev models.OutboundEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("ERROR: Undecodable broadcast frame: %v", err)
				continue
			}
			out <- ev
		}
	}()

	return out, pubsub.Close
}
