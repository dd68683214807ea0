package vouchers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/mfkayan044/securedrive-sub000/internal/api/handlers"
	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	sendVoucher "github.com/mfkayan044/securedrive-sub000/internal/usecase/send_voucher"
)

const (
	msgMethodNotAllowed     = "Method not allowed"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMalformedDetails     = "reservationDetails must be a JSON object"
	msgInvalidRecipient     = "некорректный адрес получателя"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	useCase VoucherUseCase
	logger  Logger
}

func NewHandler(useCase VoucherUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// PDF POST /api/v1/vouchers/pdf
// Маршрут регистрируется без ограничения метода, 405 отдаётся здесь
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var req PDFRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vouchers/pdf - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	doc, err := h.useCase.RenderPDF(r.Context(), &sendVoucher.PDFRequest{
		Details:      req.ReservationDetails,
		Locations:    req.Locations,
		VehicleTypes: req.VehicleTypes,
	})
	if err != nil {
		if errors.Is(err, sendVoucher.ErrMalformedDetails) {
			handlers.RespondBadRequest(w, msgMalformedDetails)
			return
		}
		h.logger.Error("POST /vouchers/pdf - Failed to render voucher: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	writePDF(w, doc)
}

// Email POST /api/v1/vouchers/email
// Ошибка почтового сервиса возвращается клиенту как 502 с деталями
func (h *Handler) Email(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vouchers/email - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.SendEmail(r.Context(), &sendVoucher.EmailRequest{
		To:           req.To,
		Name:         req.Name,
		VoucherCode:  req.VoucherCode,
		Details:      req.ReservationDetails,
		Locations:    req.Locations,
		VehicleTypes: req.VehicleTypes,
	})
	if err != nil {
		switch {
		case errors.Is(err, sendVoucher.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRecipient)
		case errors.Is(err, sendVoucher.ErrMalformedDetails):
			handlers.RespondBadRequest(w, msgMalformedDetails)
		case errors.Is(err, sendVoucher.ErrSendFailed):
			handlers.RespondJSON(w, http.StatusBadGateway, EmailResponse{Success: false, Error: err.Error()})
		default:
			h.logger.Error("POST /vouchers/email - Failed to send voucher: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, EmailResponse{Success: true})
}

// Reservation GET /api/v1/reservations/{reservationId}/voucher
func (h *Handler) Reservation(w http.ResponseWriter, r *http.Request) {
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

	doc, err := h.useCase.RenderReservation(r.Context(), reservationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, sendVoucher.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, sendVoucher.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /reservations/{id}/voucher - Failed to render voucher: id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	writePDF(w, doc)
}

func writePDF(w http.ResponseWriter, doc *sendVoucher.Document) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}
