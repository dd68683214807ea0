package vouchers

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	sendVoucher "github.com/mfkayan044/securedrive-sub000/internal/usecase/send_voucher"
	"github.com/mfkayan044/securedrive-sub000/internal/voucher"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
)

type MockVoucherUseCase struct{ mock.Mock }

func (m *MockVoucherUseCase) RenderPDF(ctx context.Context, req *sendVoucher.PDFRequest) (*sendVoucher.Document, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sendVoucher.Document), args.Error(1)
}

func (m *MockVoucherUseCase) SendEmail(ctx context.Context, req *sendVoucher.EmailRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockVoucherUseCase) RenderReservation(ctx context.Context, id int64, actor domain.Actor) (*sendVoucher.Document, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sendVoucher.Document), args.Error(1)
}

var pdfDoc = &sendVoucher.Document{Filename: "voucher_AB12CD34.pdf", Content: []byte("%PDF-1.3 test")}

func TestPDF_MethodNotAllowed(t *testing.T) {
	uc := new(MockVoucherUseCase)
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.PDF(rec, httptest.NewRequest(http.MethodGet, "/api/v1/vouchers/pdf", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	uc.AssertNotCalled(t, "RenderPDF", mock.Anything, mock.Anything)
}

func TestPDF_Success(t *testing.T) {
	uc := new(MockVoucherUseCase)
	uc.On("RenderPDF", mock.Anything, mock.MatchedBy(func(req *sendVoucher.PDFRequest) bool {
		return strings.Contains(string(req.Details), "AB12CD34") && len(req.Locations) == 1
	})).Return(pdfDoc, nil)
	h := NewHandler(uc, logger.Nop())
	body := `{"reservationDetails":{"reservation_number":"AB12CD34"},"locations":[{"id":1,"name":"IST"}],"vehicleTypes":[]}`
	rec := httptest.NewRecorder()

	h.PDF(rec, httptest.NewRequest(http.MethodPost, "/api/v1/vouchers/pdf", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=voucher_AB12CD34.pdf`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 test", rec.Body.String())
}

func TestPDF_HostileReservationNumber(t *testing.T) {
	const hostile = `AB"; filename=evil.exe; x="../y`

	t.Run("sanitized name", func(t *testing.T) {
		uc := new(MockVoucherUseCase)
		uc.On("RenderPDF", mock.Anything, mock.Anything).
			Return(&sendVoucher.Document{Filename: voucher.FileName(hostile), Content: []byte("%PDF-1.3 test")}, nil)
		h := NewHandler(uc, logger.Nop())
		rec := httptest.NewRecorder()

		h.PDF(rec, httptest.NewRequest(http.MethodPost, "/api/v1/vouchers/pdf", strings.NewReader(`{"reservationDetails":{}}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename=voucher_ABfilenameevilexexy.pdf`, rec.Header().Get("Content-Disposition"))
	})

	t.Run("quoted name stays one parameter", func(t *testing.T) {
		uc := new(MockVoucherUseCase)
		uc.On("RenderPDF", mock.Anything, mock.Anything).
			Return(&sendVoucher.Document{Filename: hostile, Content: []byte("%PDF-1.3 test")}, nil)
		h := NewHandler(uc, logger.Nop())
		rec := httptest.NewRecorder()

		h.PDF(rec, httptest.NewRequest(http.MethodPost, "/api/v1/vouchers/pdf", strings.NewReader(`{"reservationDetails":{}}`)))

		disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
		require.NoError(t, err)
		assert.Equal(t, "attachment", disposition)
		assert.Equal(t, map[string]string{"filename": hostile}, params)
	})
}

func TestPDF_MalformedDetails(t *testing.T) {
	uc := new(MockVoucherUseCase)
	uc.On("RenderPDF", mock.Anything, mock.Anything).Return(nil, sendVoucher.ErrMalformedDetails)
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.PDF(rec, httptest.NewRequest(http.MethodPost, "/api/v1/vouchers/pdf", strings.NewReader(`{"reservationDetails":"{oops"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"sent", nil, http.StatusOK, `{"success":true}`},
		{"provider failure", errors.Join(sendVoucher.ErrSendFailed, errors.New("quota")), http.StatusBadGateway, ""},
		{"bad recipient", sendVoucher.ErrInvalidInput, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockVoucherUseCase)
			uc.On("SendEmail", mock.Anything, mock.MatchedBy(func(req *sendVoucher.EmailRequest) bool {
				return req.To == "a@example.com" && req.VoucherCode == "ZZ99"
			})).Return(tt.err)
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()
			body := `{"to":"a@example.com","name":"Ali","voucherCode":"ZZ99","reservationDetails":{}}`

			h.Email(rec, httptest.NewRequest(http.MethodPost, "/api/v1/vouchers/email", strings.NewReader(body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusBadGateway {
				assert.Contains(t, rec.Body.String(), `"success":false`)
				assert.Contains(t, rec.Body.String(), "quota")
			}
		})
	}
}

func TestReservation(t *testing.T) {
	actor := domain.Actor{UserID: 42, Role: domain.RoleCustomer}
	uc := new(MockVoucherUseCase)
	uc.On("RenderReservation", mock.Anything, int64(7), actor).Return(pdfDoc, nil)
	uc.On("RenderReservation", mock.Anything, int64(8), actor).Return(nil, sendVoucher.ErrAccessDenied)
	h := NewHandler(uc, logger.Nop())

	request := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id+"/voucher", nil)
		req = mux.SetURLVars(req, map[string]string{"reservationId": id})
		req = req.WithContext(middleware.WithActor(req.Context(), actor))
		rec := httptest.NewRecorder()
		h.Reservation(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, request("7").Code)
	assert.Equal(t, http.StatusForbidden, request("8").Code)
	assert.Equal(t, http.StatusBadRequest, request("x").Code)
}
