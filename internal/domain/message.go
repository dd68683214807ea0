package domain

import "time"

// MessageType тип сообщения в переписке
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageSystem   MessageType = "system"
	MessageLocation MessageType = "location"
	MessageImage    MessageType = "image"
)

// IsValid returns true for known message types
func (t MessageType) IsValid() bool {
	switch t {
	case MessageText, MessageSystem, MessageLocation, MessageImage:
		return true
	}
	return false
}

// Conversation is keyed by reservation id and has three optional participant slots
type Conversation struct {
	ReservationID int64
	UserID        *int64
	DriverID      *int64
	AdminID       *int64
	CreatedAt     time.Time
}

// IsParticipant returns true if the actor may read and write the conversation.
// Admins always may.
func (c *Conversation) IsParticipant(actor Actor) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return c.UserID != nil && *c.UserID == actor.UserID
	case RoleDriver:
		return c.DriverID != nil && *c.DriverID == actor.UserID
	}
	return false
}

// Message single entry of the conversation log
type Message struct {
	ID            string      `json:"id"`
	ReservationID int64       `json:"reservationId"`
	SenderID      int64       `json:"senderId"`
	SenderRole    Role        `json:"senderRole"`
	Content       string      `json:"content"`
	Type          MessageType `json:"type"`
	Read          bool        `json:"read"`
	CreatedAt     time.Time   `json:"createdAt"`
}
