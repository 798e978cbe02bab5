package chathub

import (
	"log"

	"huddle/backend/internal/chat"
	"huddle/backend/internal/models"
	"huddle/backend/internal/storage"
)

// Frame couples an inbound event with the connection it arrived on.
type Frame struct {
	Client Client
	Event  models.InboundEvent
}

// Subscription asks the hub to attach a client to a room key.
type Subscription struct {
	Client Client
	Room   string
}

// Notifier receives side-channel announcements the hub does not wait on.
type Notifier interface {
	PollCreated(groupID uint, title, creatorUsername string)
}

// ManagerService is the hub: it owns the client registry and the room
// subscription table, dispatches inbound frames to the chat engines, and
// relays broadcast events to local subscribers. Registry and subscriptions
// are touched only inside Run, so handlers never need a lock.
type ManagerService struct {
	Clients map[string]Client
	rooms   map[string]map[string]Client

	IncomingCh   chan Frame
	RegisterCh   chan Client
	UnregisterCh chan Client
	SubscribeCh  chan Subscription

	// BroadcastCh carries events fanned out over Redis, own publishes
	// included; local delivery happens solely from here.
	BroadcastCh <-chan models.OutboundEvent

	Chat     *chat.Service
	Storage  storage.Storage
	Notifier Notifier
}

// NewManagerService builds a hub over the chat engines. broadcast is the
// decoded Pub/Sub stream from storage.SubscribeEvents.
func NewManagerService(engines *chat.Service, s storage.Storage, broadcast <-chan models.OutboundEvent) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		rooms:        make(map[string]map[string]Client),
		IncomingCh:   make(chan Frame),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		SubscribeCh:  make(chan Subscription, 16),
		BroadcastCh:  broadcast,
		Chat:         engines,
		Storage:      s,
	}
}

// Run is the hub's single event loop.
func (m *ManagerService) Run() {
	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetUserID()] = client
			log.Printf("Client registered: %s", client.GetUserID())

		case client := <-m.UnregisterCh:
			m.drop(client)

		case sub := <-m.SubscribeCh:
			// The subscription queue can lag a disconnect; a connection
			// that is no longer the registered one must not re-enter the
			// room table.
			if m.Clients[sub.Client.GetUserID()] != sub.Client {
				continue
			}
			if m.rooms[sub.Room] == nil {
				m.rooms[sub.Room] = make(map[string]Client)
			}
			m.rooms[sub.Room][sub.Client.GetUserID()] = sub.Client

		case frame := <-m.IncomingCh:
			// Handlers interleave freely; cross-request invariants are the
			// store's job, not the hub's.
			go m.dispatch(frame)

		case ev, ok := <-m.BroadcastCh:
			if !ok {
				return
			}
			m.deliver(ev)
		}
	}
}

// drop retires one connection. Only entries owned by this exact instance
// are removed: when the user has already reconnected, the replacement
// registration and its subscriptions stay untouched and the user is not
// marked offline.
func (m *ManagerService) drop(client Client) {
	userID := client.GetUserID()
	for key, members := range m.rooms {
		if members[userID] == client {
			delete(members, userID)
			if len(members) == 0 {
				delete(m.rooms, key)
			}
		}
	}
	client.Close()

	if m.Clients[userID] != client {
		return
	}
	delete(m.Clients, userID)

	// Off the event loop: a slow store must not stall delivery.
	go func() {
		if result := m.Chat.SetOffline(userID); !result.Success {
			log.Printf("ERROR: Could not mark %s offline on disconnect: %s", userID, result.Error)
		}
	}()
	log.Printf("Client unregistered: %s", userID)
}

// deliver hands a broadcast event to every local subscriber of its room.
func (m *ManagerService) deliver(ev models.OutboundEvent) {
	for _, client := range m.rooms[ev.Room] {
		if !client.TrySend(ev) {
			// Slow or gone: give up on the connection rather than block
			// delivery for the rest of the room.
			m.drop(client)
		}
	}
}

// broadcast publishes an event for every instance, this one included; the
// local copy arrives back through BroadcastCh.
func (m *ManagerService) broadcast(ev models.OutboundEvent) {
	if err := m.Storage.PublishEvent(ev); err != nil {
		log.Printf("ERROR: Failed to publish %s for %s: %v", ev.Event, ev.Room, err)
	}
}
