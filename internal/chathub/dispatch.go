package chathub

import (
	"encoding/json"
	"log"

	"huddle/backend/internal/chat"
	"huddle/backend/internal/models"
)

// dispatch routes one inbound frame to its engine and broadcasts the
// outcome to the room's subscribers. Runs on its own goroutine per frame.
func (m *ManagerService) dispatch(frame Frame) {
	switch frame.Event.Event {
	case models.EventJoinRoom:
		m.handleJoinRoom(frame)
	case models.EventSendMessage:
		m.handleSendMessage(frame)
	case models.EventJoinGroupRoom:
		m.handleJoinGroupRoom(frame)
	case models.EventSendGroupMessage:
		m.handleSendGroupMessage(frame)
	case models.EventSendVote:
		m.handleSendVote(frame)
	case models.EventCreatePoll:
		m.handleCreatePoll(frame)
	case models.EventJoinList:
		m.handleJoinList(frame)
	case models.EventMakeOffline:
		m.handleMakeOffline(frame)
	case models.EventPing:
		m.sendTo(frame.Client, models.OutboundEvent{Event: models.EventPong, Payload: string(frame.Event.Data)})
	default:
		log.Printf("Unknown event %q from %s", frame.Event.Event, frame.Client.GetUserID())
	}
}

func (m *ManagerService) handleJoinRoom(frame Frame) {
	var data models.JoinRoomData
	if !m.decode(frame, &data) {
		return
	}

	result := m.Chat.OpenChatRoom(data.CurrentUserID, data.TargetUserID)
	if result.ID == 0 {
		// No room to address the broadcast at; answer the joiner directly.
		m.sendTo(frame.Client, models.OutboundEvent{Event: models.EventPopulateChat, Payload: result})
		return
	}

	m.SubscribeCh <- Subscription{Client: frame.Client, Room: RoomKey(result.ID)}
	m.broadcast(models.OutboundEvent{
		Event:   models.EventPopulateChat,
		Room:    RoomKey(result.ID),
		Payload: result,
	})
}

func (m *ManagerService) handleSendMessage(frame Frame) {
	var data models.SendMessageData
	if !m.decode(frame, &data) {
		return
	}

	result := m.Chat.InsertMessage(data.ChatRoomID, data.CreatorUsername, data.Text, data.SenderUserID)
	room := RoomKey(data.ChatRoomID)
	if result.Success {
		m.broadcast(models.OutboundEvent{Event: models.EventPopulateChat, Room: room})
		m.broadcast(models.OutboundEvent{Event: models.EventMessageSuccess, Room: room})
	} else {
		m.broadcast(models.OutboundEvent{Event: models.EventMessageFailed, Room: room})
	}
}

func (m *ManagerService) handleJoinGroupRoom(frame Frame) {
	var data models.JoinGroupRoomData
	if !m.decode(frame, &data) {
		return
	}

	m.SubscribeCh <- Subscription{Client: frame.Client, Room: GroupKey(data.GroupID)}
	result := m.Chat.OpenGroupRoom(data.GroupID)
	m.broadcast(models.OutboundEvent{
		Event:   models.EventPopulateGroupChat,
		Room:    GroupKey(data.GroupID),
		Payload: result,
	})
}

func (m *ManagerService) handleSendGroupMessage(frame Frame) {
	var data models.SendGroupMessageData
	if !m.decode(frame, &data) {
		return
	}

	kind := chat.ClassifyKind(data.Text)
	result := m.Chat.InsertGroupMessage(data.GroupID, data.CreatorUsername, data.Text, data.SenderUserID, kind)
	room := GroupKey(data.GroupID)
	if result.Success {
		m.broadcast(models.OutboundEvent{Event: models.EventPopulateGroupChat, Room: room})
		m.broadcast(models.OutboundEvent{Event: models.EventGroupMessageOK, Room: room})
	} else {
		m.broadcast(models.OutboundEvent{Event: models.EventGroupMessageFailed, Room: room})
	}
}

func (m *ManagerService) handleSendVote(frame Frame) {
	var data models.SendVoteData
	if !m.decode(frame, &data) {
		return
	}

	result := m.Chat.SubmitVote(data.PollID, data.UserID, data.Decision)
	room := GroupKey(data.GroupID)
	if result.Success {
		m.broadcast(models.OutboundEvent{Event: models.EventPopulateGroupChat, Room: room})
		m.broadcast(models.OutboundEvent{Event: models.EventVoteSuccess, Room: room})
	} else {
		m.broadcast(models.OutboundEvent{Event: models.EventVoteFailed, Room: room, Payload: result})
	}
}

func (m *ManagerService) handleCreatePoll(frame Frame) {
	var data models.CreatePollData
	if !m.decode(frame, &data) {
		return
	}

	result := m.Chat.CreatePoll(data.PollName, data.GroupID, data.UserID, data.CreatorUsername)
	room := GroupKey(data.GroupID)
	if result.Success {
		m.broadcast(models.OutboundEvent{Event: models.EventPopulateGroupChat, Room: room})
		m.broadcast(models.OutboundEvent{Event: models.EventCreatePollSuccess, Room: room})
		if m.Notifier != nil {
			m.Notifier.PollCreated(data.GroupID, data.PollName, data.CreatorUsername)
		}
	} else {
		m.broadcast(models.OutboundEvent{Event: models.EventCreatePollFailed, Room: room, Payload: result})
	}
}

func (m *ManagerService) handleJoinList(frame Frame) {
	var data models.JoinListData
	if !m.decode(frame, &data) {
		return
	}

	result := m.Chat.JoinList(data.Message, data.UserID, data.Username, data.GroupID)
	if result.Success {
		m.broadcast(models.OutboundEvent{Event: models.EventPopulateGroupChat, Room: GroupKey(data.GroupID)})
	} else {
		log.Printf("Join-list rejected for %s in group %d: %s", data.UserID, data.GroupID, result.Error)
	}
}

func (m *ManagerService) handleMakeOffline(frame Frame) {
	var data models.MakeOfflineData
	if !m.decode(frame, &data) {
		return
	}
	if result := m.Chat.SetOffline(data.UserID); !result.Success {
		log.Printf("ERROR: make-offline for %s: %s", data.UserID, result.Error)
	}
}

// decode unmarshals the frame payload, logging and dropping bad frames.
func (m *ManagerService) decode(frame Frame, into interface{}) bool {
	if err := json.Unmarshal(frame.Event.Data, into); err != nil {
		log.Printf("Error decoding %s payload from %s: %v", frame.Event.Event, frame.Client.GetUserID(), err)
		return false
	}
	return true
}

// sendTo answers one connection directly, bypassing room broadcast.
func (m *ManagerService) sendTo(client Client, ev models.OutboundEvent) {
	if !client.TrySend(ev) {
		log.Printf("Dropped direct %s to %s: connection closed or buffer full", ev.Event, client.GetUserID())
	}
}
