package apply_coupon

import (
	"errors"
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	applyCoupon "github.com/mfkayan044/securedrive-sub000/internal/usecase/apply_coupon"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidCode          = "некорректный код купона"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgNotPayable           = "бронирование не ожидает оплаты"
	msgCouponNotFound       = "купон не найден"
	msgCouponInactive       = "купон не активен"
	msgCouponExpired        = "срок действия купона истёк"
)

// ApplyCouponRequest HTTP request model
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type Handler struct {
	useCase ApplyCouponUseCase
	logger  Logger
}

func NewHandler(useCase ApplyCouponUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/coupon
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

	var req ApplyCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &applyCoupon.Request{
		ReservationID: reservationID,
		Actor:         actor,
		Code:          req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, applyCoupon.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCode)
		case errors.Is(err, applyCoupon.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, applyCoupon.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, applyCoupon.ErrNotPayable):
			handlers.RespondConflict(w, msgNotPayable)
		case errors.Is(err, applyCoupon.ErrCouponNotFound):
			handlers.RespondNotFound(w, msgCouponNotFound)
		case errors.Is(err, applyCoupon.ErrCouponInactive):
			handlers.RespondBadRequest(w, msgCouponInactive)
		case errors.Is(err, applyCoupon.ErrCouponExpired):
			handlers.RespondBadRequest(w, msgCouponExpired)
		default:
			h.logger.Error("POST /reservations/{id}/coupon - Failed to apply coupon: id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/coupon - Coupon %s applied: id=%d", result.CouponCode, reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
