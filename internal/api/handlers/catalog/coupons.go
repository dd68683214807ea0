package catalog

import (
	"net/http"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/service/catalog/models"
)

// ListCoupons GET /api/v1/admin/coupons
func (h *Handler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListCoupons(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /admin/coupons", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// CreateCoupon POST /api/v1/admin/coupons
func (h *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.CouponRequest
	if !h.body(w, r, &req) {
		return
	}
	result, err := h.service.CreateCoupon(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/coupons", err)
		return
	}
	h.logger.Info("POST /admin/coupons - Coupon %s created", result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateCoupon PUT /api/v1/admin/coupons/{id}
func (h *Handler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.CouponRequest
	id, ok := h.idAndBody(w, r, &req)
	if !ok {
		return
	}
	result, err := h.service.UpdateCoupon(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/coupons/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteCoupon DELETE /api/v1/admin/coupons/{id}
func (h *Handler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "DELETE /admin/coupons/{id}", func(id int64) error {
		return h.service.DeleteCoupon(r.Context(), id)
	})
}
