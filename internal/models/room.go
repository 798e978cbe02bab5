package models

// ChatRoom is a persisted 1-on-1 conversation between two users.
//
// The user pair is stored normalized (smaller id in UserID1) and guarded by a
// composite unique index, so at most one room can ever exist for a pair;
// a racing second insert fails with a duplicate-key error and the caller
// re-reads the winner's row. Lookups still match both orderings.
type ChatRoom struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Type tags the conversation kind. Direct rooms carry "personal".
	Type    string `gorm:"not null" json:"type"`
	UserID1 string `gorm:"column:user_id_1;uniqueIndex:idx_user_pair" json:"user_id_1"`
	UserID2 string `gorm:"column:user_id_2;uniqueIndex:idx_user_pair" json:"user_id_2"`
	// LastMessage caches the id of the most recently inserted message,
	// for summary display. Nil until the first message lands.
	LastMessage *uint `gorm:"column:last_message" json:"last_message"`
}

// TableName keeps the legacy table name.
func (ChatRoom) TableName() string { return "chatrooms" }

// RoomTypePersonal is the type tag of a direct two-party room.
const RoomTypePersonal = "personal"
