package catalog

import (
	"net/http"
	"strconv"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListPriceRules GET /api/v1/admin/price-rules?fromLocationId=&toLocationId=&vehicleTypeId=&all=true
func (h *Handler) ListPriceRules(w http.ResponseWriter, r *http.Request) {
	filter := domain.PriceRuleFilter{ActiveOnly: activeOnly(r)}
	q := r.URL.Query()
	for key, dst := range map[string]**int64{
		"fromLocationId": &filter.FromLocation,
		"toLocationId":   &filter.ToLocation,
		"vehicleTypeId":  &filter.VehicleTypeID,
	} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		*dst = &id
	}

	list, err := h.service.ListPriceRules(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, "GET /admin/price-rules", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// CreatePriceRule POST /api/v1/admin/price-rules
func (h *Handler) CreatePriceRule(w http.ResponseWriter, r *http.Request) {
	var req models.PriceRuleRequest
	if !h.body(w, r, &req) {
		return
	}
	result, err := h.service.CreatePriceRule(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/price-rules", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdatePriceRule PUT /api/v1/admin/price-rules/{id}
func (h *Handler) UpdatePriceRule(w http.ResponseWriter, r *http.Request) {
	var req models.PriceRuleRequest
	id, ok := h.idAndBody(w, r, &req)
	if !ok {
		return
	}
	result, err := h.service.UpdatePriceRule(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/price-rules/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeletePriceRule DELETE /api/v1/admin/price-rules/{id}
func (h *Handler) DeletePriceRule(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "DELETE /admin/price-rules/{id}", func(id int64) error {
		return h.service.DeletePriceRule(r.Context(), id)
	})
}
