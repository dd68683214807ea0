package catalog

import (
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListLocations GET /api/v1/locations
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListLocations(r.Context(), true)
	if err != nil {
		h.respondServiceError(w, "GET /locations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// AdminListLocations GET /api/v1/admin/locations?all=true
func (h *Handler) AdminListLocations(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListLocations(r.Context(), activeOnly(r))
	if err != nil {
		h.respondServiceError(w, "GET /admin/locations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// CreateLocation POST /api/v1/admin/locations
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if !h.body(w, r, &req) {
		return
	}
	result, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/locations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateLocation PUT /api/v1/admin/locations/{id}
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	id, ok := h.idAndBody(w, r, &req)
	if !ok {
		return
	}
	result, err := h.service.UpdateLocation(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/locations/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteLocation DELETE /api/v1/admin/locations/{id}
func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "DELETE /admin/locations/{id}", func(id int64) error {
		return h.service.DeleteLocation(r.Context(), id)
	})
}
