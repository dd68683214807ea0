package catalog

import (
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListExtraServices GET /api/v1/extra-services
func (h *Handler) ListExtraServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListExtraServices(r.Context(), true)
	if err != nil {
		h.respondServiceError(w, "GET /extra-services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// AdminListExtraServices GET /api/v1/admin/extra-services?all=true
func (h *Handler) AdminListExtraServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListExtraServices(r.Context(), activeOnly(r))
	if err != nil {
		h.respondServiceError(w, "GET /admin/extra-services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// CreateExtraService POST /api/v1/admin/extra-services
func (h *Handler) CreateExtraService(w http.ResponseWriter, r *http.Request) {
	var req models.ExtraServiceRequest
	if !h.body(w, r, &req) {
		return
	}
	result, err := h.service.CreateExtraService(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/extra-services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateExtraService PUT /api/v1/admin/extra-services/{id}
func (h *Handler) UpdateExtraService(w http.ResponseWriter, r *http.Request) {
	var req models.ExtraServiceRequest
	id, ok := h.idAndBody(w, r, &req)
	if !ok {
		return
	}
	result, err := h.service.UpdateExtraService(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/extra-services/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteExtraService DELETE /api/v1/admin/extra-services/{id}
func (h *Handler) DeleteExtraService(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "DELETE /admin/extra-services/{id}", func(id int64) error {
		return h.service.DeleteExtraService(r.Context(), id)
	})
}
