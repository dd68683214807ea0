package reservation_action

import (
	"errors"
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgUnknownAction        = "неизвестное действие"
	msgActionForbidden      = "действие недоступно для вашей роли"
	msgInvalidTransition    = "действие недоступно в текущем статусе бронирования"
	msgStatusChanged        = "статус бронирования уже изменён, обновите страницу"
	msgDriverRequired       = "для назначения нужно указать водителя"
	msgDriverNotFound       = "водитель не найден"
	msgDriverInactive       = "водитель не активен"
	msgInvalidInput         = "некорректные данные действия"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/actions
// Тело: {"action": "confirm|assign|start|complete|cancel", "driverId": 3, "cancellationReason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyAction(r.Context(), reservationID, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, reservations.ErrUnknownAction):
			handlers.RespondBadRequest(w, msgUnknownAction)
		case errors.Is(err, reservations.ErrActionForbidden):
			handlers.RespondForbidden(w, msgActionForbidden)
		case errors.Is(err, reservations.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, reservations.ErrStatusChanged):
			handlers.RespondConflict(w, msgStatusChanged)
		case errors.Is(err, reservations.ErrDriverRequired):
			handlers.RespondBadRequest(w, msgDriverRequired)
		case errors.Is(err, reservations.ErrDriverNotFound):
			handlers.RespondNotFound(w, msgDriverNotFound)
		case errors.Is(err, reservations.ErrDriverInactive):
			handlers.RespondBadRequest(w, msgDriverInactive)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /reservations/{id}/actions - Failed to apply %q: id=%d, error=%v", req.Action, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/actions - %s applied: id=%d, %s=%d", req.Action, reservationID, actor.Role, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
