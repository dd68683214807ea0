package catalog

import (
	"errors"
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog"
)

const (
	msgInvalidID          = "некорректный ID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректные параметры запроса"
	msgInvalidInput       = "некорректные данные"
	msgLocationNotFound   = "локация не найдена"
	msgVehicleNotFound    = "тип автомобиля не найден"
	msgExtraNotFound      = "дополнительная услуга не найдена"
	msgPriceRuleNotFound  = "правило цены не найдено"
	msgCouponNotFound     = "купон не найден"
	msgCouponCodeTaken    = "купон с таким кодом уже существует"
	msgDriverNotFound     = "водитель не найден"
)

// Handler публичные справочники и их администрирование
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// respondServiceError переводит ошибку сервиса справочников в HTTP ответ
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, catalog.ErrLocationNotFound):
		handlers.RespondNotFound(w, msgLocationNotFound)
	case errors.Is(err, catalog.ErrVehicleTypeNotFound):
		handlers.RespondNotFound(w, msgVehicleNotFound)
	case errors.Is(err, catalog.ErrExtraServiceNotFound):
		handlers.RespondNotFound(w, msgExtraNotFound)
	case errors.Is(err, catalog.ErrPriceRuleNotFound):
		handlers.RespondNotFound(w, msgPriceRuleNotFound)
	case errors.Is(err, catalog.ErrCouponNotFound):
		handlers.RespondNotFound(w, msgCouponNotFound)
	case errors.Is(err, catalog.ErrCouponCodeTaken):
		handlers.RespondConflict(w, msgCouponCodeTaken)
	case errors.Is(err, catalog.ErrDriverNotFound):
		handlers.RespondNotFound(w, msgDriverNotFound)
	default:
		h.logger.Error("%s - %v", op, err)
		handlers.RespondInternalError(w)
	}
}

// idAndBody читает {id} из пути и JSON тело, при ошибке сам отвечает клиенту
func (h *Handler) idAndBody(w http.ResponseWriter, r *http.Request, dst interface{}) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	if !h.body(w, r, dst) {
		return 0, false
	}
	return id, true
}

func (h *Handler) body(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("%s %s - Invalid request body: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

// deleteByID общий обработчик DELETE /admin/<entity>/{id}
func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, op string, del func(id int64) error) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	if err := del(id); err != nil {
		h.respondServiceError(w, op, err)
		return
	}
	h.logger.Info("%s - id=%d deleted", op, id)
	w.WriteHeader(http.StatusNoContent)
}

// activeOnly публичные списки показывают только активные записи,
// админка может запросить все через ?all=true
func activeOnly(r *http.Request) bool {
	return r.URL.Query().Get("all") != "true"
}
