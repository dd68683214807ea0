package conversations

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	messagesStore "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/messages"
	"github.com/mfkayan044/securedrive-sub000/internal/service/messaging/models"
)

type MessagingService interface {
	SendMessage(ctx context.Context, reservationID int64, actor domain.Actor, req *models.SendMessageRequest) (*models.MessageResponse, error)
	ListMessages(ctx context.Context, reservationID int64, actor domain.Actor) ([]*models.MessageResponse, error)
	MarkRead(ctx context.Context, reservationID int64, actor domain.Actor) (*models.MarkReadResponse, error)
	Subscribe(ctx context.Context, reservationID int64, actor domain.Actor) (*messagesStore.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
