package list_reservations

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations"
	"github.com/mfkayan044/securedrive-sub000/internal/service/reservations/models"
)

const (
	msgInvalidQuery  = "некорректные параметры фильтра"
	msgInvalidFilter = "некорректный фильтр бронирований"
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle GET /api/v1/reservations?status=&paymentStatus=&from=&to=&driverId=&userId=&limit=&offset=
// Клиент видит только свои бронирования, водитель - назначенные ему
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), actor, req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: %s=%d, error=%v", actor.Role, actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(q url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	if v := q.Get("paymentStatus"); v != "" {
		req.PaymentStatus = &v
	}

	var err error
	if req.From, err = optionalDate(q.Get("from")); err != nil {
		return nil, err
	}
	if req.To, err = optionalDate(q.Get("to")); err != nil {
		return nil, err
	}
	if req.DriverID, err = optionalID(q.Get("driverId")); err != nil {
		return nil, err
	}
	if req.UserID, err = optionalID(q.Get("userId")); err != nil {
		return nil, err
	}
	if v := q.Get("limit"); v != "" {
		if req.Limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, err
		}
	}
	if v := q.Get("offset"); v != "" {
		if req.Offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, err
		}
	}

	return req, nil
}

func optionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalID(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
