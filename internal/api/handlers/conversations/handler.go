package conversations

import (
	"errors"
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/messaging"
	"github.com/mfkayan044/securedrive-sub000/internal/service/messaging/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidMessage       = "некорректное сообщение"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "переписка не найдена"
	msgForbidden            = "вы не участник этой переписки"
)

// Handler переписка по бронированию
type Handler struct {
	service MessagingService
	logger  Logger
}

func NewHandler(service MessagingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/conversations/{reservationId}/messages
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reservationID, actor, ok := h.target(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListMessages(r.Context(), reservationID, actor)
	if err != nil {
		h.respondError(w, "GET /conversations/{id}/messages", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Send POST /api/v1/conversations/{reservationId}/messages
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	reservationID, actor, ok := h.target(w, r)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg, err := h.service.SendMessage(r.Context(), reservationID, actor, &req)
	if err != nil {
		h.respondError(w, "POST /conversations/{id}/messages", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, msg)
}

// MarkRead POST /api/v1/conversations/{reservationId}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	reservationID, actor, ok := h.target(w, r)
	if !ok {
		return
	}

	result, err := h.service.MarkRead(r.Context(), reservationID, actor)
	if err != nil {
		h.respondError(w, "POST /conversations/{id}/read", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// target читает ID бронирования и пользователя, при ошибке сам отвечает клиенту
func (h *Handler) target(w http.ResponseWriter, r *http.Request) (int64, domain.Actor, bool) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return 0, domain.Actor{}, false
	}
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, domain.Actor{}, false
	}
	return reservationID, actor, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, messaging.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidMessage)
	case errors.Is(err, messaging.ErrConversationNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, messaging.ErrAccessDenied):
		handlers.RespondForbidden(w, msgForbidden)
	default:
		h.logger.Error("%s - %v", op, err)
		handlers.RespondInternalError(w)
	}
}
