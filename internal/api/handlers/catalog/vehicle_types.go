package catalog

import (
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListVehicleTypes GET /api/v1/vehicle-types
func (h *Handler) ListVehicleTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListVehicleTypes(r.Context(), true)
	if err != nil {
		h.respondServiceError(w, "GET /vehicle-types", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// AdminListVehicleTypes GET /api/v1/admin/vehicle-types?all=true
func (h *Handler) AdminListVehicleTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListVehicleTypes(r.Context(), activeOnly(r))
	if err != nil {
		h.respondServiceError(w, "GET /admin/vehicle-types", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// CreateVehicleType POST /api/v1/admin/vehicle-types
func (h *Handler) CreateVehicleType(w http.ResponseWriter, r *http.Request) {
	var req models.VehicleTypeRequest
	if !h.body(w, r, &req) {
		return
	}
	result, err := h.service.CreateVehicleType(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/vehicle-types", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateVehicleType PUT /api/v1/admin/vehicle-types/{id}
func (h *Handler) UpdateVehicleType(w http.ResponseWriter, r *http.Request) {
	var req models.VehicleTypeRequest
	id, ok := h.idAndBody(w, r, &req)
	if !ok {
		return
	}
	result, err := h.service.UpdateVehicleType(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/vehicle-types/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteVehicleType DELETE /api/v1/admin/vehicle-types/{id}
func (h *Handler) DeleteVehicleType(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "DELETE /admin/vehicle-types/{id}", func(id int64) error {
		return h.service.DeleteVehicleType(r.Context(), id)
	})
}
