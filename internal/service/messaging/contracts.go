package messaging

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	messagesStore "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/messages"
)

// MessageStore интерфейс хранилища переписки
type MessageStore interface {
	SaveConversation(ctx context.Context, conv *domain.Conversation) error
	GetConversation(ctx context.Context, reservationID int64) (*domain.Conversation, error)
	Append(ctx context.Context, msg *domain.Message) error
	List(ctx context.Context, reservationID int64) ([]*domain.Message, error)
	MarkRead(ctx context.Context, reservationID, readerID int64) (int, error)
	Subscribe(ctx context.Context, reservationID int64) (*messagesStore.Subscription, error)
}

// ReservationReader нужен, чтобы восстановить переписку, которую не удалось создать вместе с бронированием
type ReservationReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
