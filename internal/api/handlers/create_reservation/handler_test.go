package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	createReservation "github.com/mfkayan044/securedrive-sub000/internal/usecase/create_reservation"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
	"github.com/mfkayan044/securedrive-sub000/pkg/types"
)

type MockCreateReservationUseCase struct{ mock.Mock }

func (m *MockCreateReservationUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

const validBody = `{
	"customerName": "Ayşe Yılmaz",
	"customerEmail": "ayse@example.com",
	"customerPhone": "+905551112233",
	"tripType": "round-trip",
	"fromLocationId": 1,
	"toLocationId": 2,
	"vehicleTypeId": 3,
	"departureDate": "2030-06-01",
	"departureTime": "10:30",
	"returnDate": "2030-06-05",
	"returnTime": "18:00",
	"passengers": 2,
	"totalPrice": 385,
	"userId": 99,
	"paymentStatus": "paid"
}`

func created() *createReservation.Response {
	return &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:                10,
			ReservationNumber: "AB12CD34",
			Status:            domain.StatusPending,
			TripType:          domain.TripRoundTrip,
			DepartureTime:     types.TimeString("10:30"),
			Passengers:        2,
			TotalPrice:        385,
		},
		ComputedTotal: 385,
	}
}

func TestHandle_WebForm(t *testing.T) {
	uc := new(MockCreateReservationUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.Source == domain.SourceWeb &&
			req.UserID != nil && *req.UserID == 42 &&
			req.AdminID == nil &&
			req.PaymentStatus == nil &&
			req.ReturnTime != nil && *req.ReturnTime == types.TimeString("18:00") &&
			req.SubmittedTotal != nil && *req.SubmittedTotal == 385
	})).Return(created(), nil)
	h := NewHandler(uc, logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 42, Role: domain.RoleCustomer}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AB12CD34", body["reservationNumber"])
	uc.AssertExpectations(t)
}

func TestHandle_AnonymousWebForm(t *testing.T) {
	uc := new(MockCreateReservationUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.UserID == nil
	})).Return(created(), nil)
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandle_AdminEntry(t *testing.T) {
	uc := new(MockCreateReservationUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.Source == domain.SourceAdmin &&
			req.AdminID != nil && *req.AdminID == 1 &&
			req.UserID != nil && *req.UserID == 99 &&
			req.PaymentStatus != nil && *req.PaymentStatus == "paid"
	})).Return(created(), nil)
	h := NewAdminHandler(uc, logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations", strings.NewReader(validBody))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createReservation.ErrInvalidInput, http.StatusBadRequest},
		{"past date", createReservation.ErrInvalidDate, http.StatusBadRequest},
		{"vehicle", createReservation.ErrVehicleTypeNotFound, http.StatusNotFound},
		{"capacity", createReservation.ErrTooManyPassengers, http.StatusBadRequest},
		{"unpriced", createReservation.ErrRouteNotPriced, http.StatusUnprocessableEntity},
		{"mismatch", createReservation.ErrPriceMismatch, http.StatusConflict},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockCreateReservationUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadDateFormat(t *testing.T) {
	uc := new(MockCreateReservationUseCase)
	h := NewHandler(uc, logger.Nop())
	body := strings.Replace(validBody, `"10:30"`, `"25:99"`, 1)
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
