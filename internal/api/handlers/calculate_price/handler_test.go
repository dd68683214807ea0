package calculate_price

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	calculatePrice "github.com/mfkayan044/securedrive-sub000/internal/usecase/calculate_price"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
)

type MockCalculatePriceUseCase struct{ mock.Mock }

func (m *MockCalculatePriceUseCase) Execute(ctx context.Context, req *calculatePrice.Request) (*calculatePrice.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calculatePrice.Response), args.Error(1)
}

func TestHandle(t *testing.T) {
	uc := new(MockCalculatePriceUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *calculatePrice.Request) bool {
		return req.Date != nil && req.Date.Equal(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)) &&
			req.TripType == "round-trip" && len(req.ExtraServiceIDs) == 2
	})).Return(&calculatePrice.Response{BasePrice: 150, Multiplier: 2, Total: 385, Bookable: true}, nil)
	h := NewHandler(uc, logger.Nop())
	body := `{"fromLocationId":1,"toLocationId":2,"vehicleTypeId":3,"tripType":"round-trip","extraServiceIds":[5,6],"date":"2030-06-01"}`
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":385`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"bad date", `{"date":"01.06.2030"}`, nil, http.StatusBadRequest},
		{"invalid input", `{}`, calculatePrice.ErrInvalidInput, http.StatusBadRequest},
		{"unknown coupon", `{"couponCode":"NOPE"}`, calculatePrice.ErrCouponNotFound, http.StatusNotFound},
		{"expired coupon", `{"couponCode":"OLD"}`, calculatePrice.ErrCouponExpired, http.StatusBadRequest},
		{"internal", `{}`, calculatePrice.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockCalculatePriceUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
