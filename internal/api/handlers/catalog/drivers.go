package catalog

import (
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListDrivers GET /api/v1/admin/drivers?all=true
func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListDrivers(r.Context(), activeOnly(r))
	if err != nil {
		h.respondServiceError(w, "GET /admin/drivers", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// GetDriver GET /api/v1/admin/drivers/{id}
func (h *Handler) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	result, err := h.service.GetDriver(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /admin/drivers/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateDriver POST /api/v1/admin/drivers
func (h *Handler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req models.DriverRequest
	if !h.body(w, r, &req) {
		return
	}
	result, err := h.service.CreateDriver(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/drivers", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateDriver PUT /api/v1/admin/drivers/{id}
func (h *Handler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	var req models.DriverRequest
	id, ok := h.idAndBody(w, r, &req)
	if !ok {
		return
	}
	result, err := h.service.UpdateDriver(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/drivers/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
