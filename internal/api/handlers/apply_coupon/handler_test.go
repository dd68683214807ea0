package apply_coupon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mfkayan044/securedrive-sub000/internal/api/middleware"
	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	applyCoupon "github.com/mfkayan044/securedrive-sub000/internal/usecase/apply_coupon"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
)

type MockApplyCouponUseCase struct{ mock.Mock }

func (m *MockApplyCouponUseCase) Execute(ctx context.Context, req *applyCoupon.Request) (*applyCoupon.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applyCoupon.Response), args.Error(1)
}

func newRequest(reservationID, body string, withActor bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+reservationID+"/coupon", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": reservationID})
	if withActor {
		req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 7, Role: domain.RoleCustomer}))
	}
	return req
}

func TestHandle_Success(t *testing.T) {
	uc := new(MockApplyCouponUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *applyCoupon.Request) bool {
		return req.ReservationID == 15 && req.Code == "SAVE10" && req.Actor.UserID == 7
	})).Return(&applyCoupon.Response{ReservationID: 15, CouponCode: "SAVE10", TotalPrice: 100, Discount: 10, PayableTotal: 90}, nil)
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("15", `{"code":"SAVE10"}`, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payableTotal":90`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		withActor  bool
		err        error
		wantStatus int
	}{
		{"bad id", "abc", true, nil, http.StatusBadRequest},
		{"no actor", "15", false, nil, http.StatusUnauthorized},
		{"not payable", "15", true, applyCoupon.ErrNotPayable, http.StatusConflict},
		{"coupon not found", "15", true, applyCoupon.ErrCouponNotFound, http.StatusNotFound},
		{"expired", "15", true, applyCoupon.ErrCouponExpired, http.StatusBadRequest},
		{"foreign reservation", "15", true, applyCoupon.ErrAccessDenied, http.StatusForbidden},
		{"internal", "15", true, applyCoupon.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockApplyCouponUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest(tt.id, `{"code":"SAVE10"}`, tt.withActor))

			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}
