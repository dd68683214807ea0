package update_payment_status

import (
	"context"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations/models"
)

type ReservationService interface {
	UpdatePaymentStatus(ctx context.Context, id int64, actor domain.Actor, status string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
