package models

import "encoding/json"

// Inbound event names. One envelope per client frame.
const (
	EventJoinRoom         = "join-room"
	EventSendMessage      = "send-message"
	EventJoinGroupRoom    = "join-group-room"
	EventSendGroupMessage = "send-group-message"
	EventSendVote         = "send-vote"
	EventCreatePoll       = "create-poll"
	EventJoinList         = "join-list"
	EventMakeOffline      = "make-offline"
	EventPing             = "ping"
)

// Outbound event names.
const (
	EventPopulateChat       = "populate-chat"
	EventMessageSuccess     = "message-success"
	EventMessageFailed      = "message-failed"
	EventPopulateGroupChat  = "populate-group-chat"
	EventGroupMessageOK     = "group-message-success"
	EventGroupMessageFailed = "group-message-failed"
	EventVoteSuccess        = "vote-success"
	EventVoteFailed         = "vote-failed"
	EventCreatePollSuccess  = "create-poll-success"
	EventCreatePollFailed   = "create-poll-failed"
	EventPong               = "pong"
)

// InboundEvent is the frame a client sends over the socket.
type InboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent is the frame broadcast to room subscribers. Room carries
// the hub-level subscription key it should be delivered to.
type OutboundEvent struct {
	Event   string      `json:"event"`
	Room    string      `json:"room,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type JoinRoomData struct {
	CurrentUserID string `json:"currentUserId"`
	TargetUserID  string `json:"targetUserId"`
}

type SendMessageData struct {
	ChatRoomID      uint   `json:"chatRoomId"`
	CreatorUsername string `json:"creatorUsername"`
	Text            string `json:"text"`
	SenderUserID    string `json:"senderUserId"`
}

type JoinGroupRoomData struct {
	GroupID uint `json:"groupId"`
}

type SendGroupMessageData struct {
	GroupID         uint   `json:"groupId"`
	CreatorUsername string `json:"creatorUsername"`
	Text            string `json:"text"`
	SenderUserID    string `json:"senderUserId"`
}

type SendVoteData struct {
	GroupID  uint   `json:"groupId"`
	PollID   uint   `json:"pollId"`
	UserID   string `json:"userId"`
	Decision bool   `json:"decisionBoolean"`
}

type CreatePollData struct {
	PollName        string `json:"pollName"`
	GroupID         uint   `json:"groupId"`
	UserID          string `json:"userId"`
	CreatorUsername string `json:"creatorUsername"`
}

type JoinListData struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	GroupID  uint   `json:"groupId"`
}

type MakeOfflineData struct {
	UserID string `json:"userId"`
}
