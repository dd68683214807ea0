package create_reservation

import (
	"errors"
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations/models"
	createReservation "github.com/mfkayan044/securedrive-sub000/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "дата поездки в прошлом или возврат раньше отправления"
	msgVehicleNotFound    = "тип автомобиля не найден"
	msgTooManyPassengers  = "пассажиры не помещаются в выбранный автомобиль"
	msgRouteNotPriced     = "для выбранного маршрута нет цены"
	msgPriceMismatch      = "стоимость изменилась, пересчитайте бронирование"
)

type Handler struct {
	useCase CreateReservationUseCase
	source  domain.ReservationSource
	logger  Logger
}

// NewHandler форма на сайте (POST /api/v1/reservations)
func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, source: domain.SourceWeb, logger: logger}
}

// NewAdminHandler ручной ввод администратором (POST /api/v1/admin/reservations)
func NewAdminHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, source: domain.SourceAdmin, logger: logger}
}

// Handle создает бронирование
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.source)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	role := domain.RoleCustomer
	if actor, ok := middleware.GetActor(r.Context()); ok {
		role = actor.Role
		switch h.source {
		case domain.SourceWeb:
			useCaseReq.UserID = &actor.UserID
		case domain.SourceAdmin:
			useCaseReq.AdminID = &actor.UserID
		}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrVehicleTypeNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createReservation.ErrTooManyPassengers):
			handlers.RespondBadRequest(w, msgTooManyPassengers)

		case errors.Is(err, createReservation.ErrRouteNotPriced):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRouteNotPriced)

		case errors.Is(err, createReservation.ErrPriceMismatch):
			handlers.RespondConflict(w, msgPriceMismatch)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: source=%s, error=%v", h.source, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, number=%s, source=%s",
		result.Reservation.ID, result.Reservation.ReservationNumber, h.source)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(result.Reservation, role))
}
