package models

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// SendMessageRequest сообщение от участника переписки
type SendMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"` // text по умолчанию
}

// MessageResponse сообщение переписки
type MessageResponse struct {
	ID            string    `json:"id"`
	ReservationID int64     `json:"reservationId"`
	SenderID      int64     `json:"senderId"`
	SenderRole    string    `json:"senderRole"`
	Content       string    `json:"content"`
	Type          string    `json:"type"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MarkReadResponse ответ на отметку о прочтении
type MarkReadResponse struct {
	Marked int `json:"marked"`
}

// FromDomainMessage конвертирует доменное сообщение в ответ
func FromDomainMessage(m *domain.Message) *MessageResponse {
	return &MessageResponse{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		SenderID:      m.SenderID,
		SenderRole:    string(m.SenderRole),
		Content:       m.Content,
		Type:          string(m.Type),
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomainMessages конвертирует список сообщений
func FromDomainMessages(list []*domain.Message) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromDomainMessage(m))
	}
	return out
}
