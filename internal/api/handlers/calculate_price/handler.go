package calculate_price

import (
	"errors"
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	calculatePrice "github.com/mfkayan044/securedrive-sub000/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры расчёта"
	msgCouponNotFound     = "купон не найден"
	msgCouponInactive     = "купон не активен"
	msgCouponExpired      = "срок действия купона истёк"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
// Маршрут без цены не ошибка: возвращается bookable=false и нулевая стоимость
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, calculatePrice.ErrCouponNotFound):
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, calculatePrice.ErrCouponInactive):
			handlers.RespondBadRequest(w, msgCouponInactive)

		case errors.Is(err, calculatePrice.ErrCouponExpired):
			handlers.RespondBadRequest(w, msgCouponExpired)

		default:
			h.logger.Error("POST /quotes - Failed to calculate price: from=%d, to=%d, vehicle=%d, error=%v",
				req.FromLocationID, req.ToLocationID, req.VehicleTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
