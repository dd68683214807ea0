package calculate_price

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	couponRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/coupon"
	priceRuleRepo "github.com/mfkayan044/securedrive-sub000/internal/infra/storage/pricerule"
	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
	"github.com/mfkayan044/securedrive-sub000/pkg/ptr"
)

type MockPriceRuleRepo struct {
	mock.Mock
}

func (m *MockPriceRuleRepo) FindApplicable(ctx context.Context, fromID, toID, vehicleTypeID int64, date time.Time) (*domain.PriceRule, error) {
	args := m.Called(ctx, fromID, toID, vehicleTypeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRule), args.Error(1)
}

type MockExtraRepo struct {
	mock.Mock
}

func (m *MockExtraRepo) GetActiveExtraServicesByIDs(ctx context.Context, ids []int64) ([]*domain.ExtraService, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExtraService), args.Error(1)
}

type MockCouponRepo struct {
	mock.Mock
}

func (m *MockCouponRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var today = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func newTestUseCase() (*UseCase, *MockPriceRuleRepo, *MockExtraRepo, *MockCouponRepo) {
	rules := new(MockPriceRuleRepo)
	extras := new(MockExtraRepo)
	coupons := new(MockCouponRepo)
	uc := NewUseCase(rules, extras, coupons, logger.Nop())
	uc.timeProvider = fixedTime{t: today}
	return uc, rules, extras, coupons
}

func roundTripRequest() *Request {
	return &Request{
		FromLocationID:  1,
		ToLocationID:    2,
		VehicleTypeID:   3,
		TripType:        "round-trip",
		ExtraServiceIDs: []int64{5, 5, 99},
	}
}

func TestExecute_RoundTripWithExtra(t *testing.T) {
	uc, rules, extras, _ := newTestUseCase()
	ctx := context.Background()

	rules.On("FindApplicable", ctx, int64(1), int64(2), int64(3), today).
		Return(&domain.PriceRule{ID: 8, Price: 180}, nil)
	// повторы убраны, неизвестный id 99 просто не вернулся из каталога
	extras.On("GetActiveExtraServicesByIDs", ctx, []int64{5, 99}).
		Return([]*domain.ExtraService{{ID: 5, Name: "Bebek koltuğu", Price: 25, IsActive: true}}, nil)

	resp, err := uc.Execute(ctx, roundTripRequest())

	require.NoError(t, err)
	assert.Equal(t, 180.0, resp.BasePrice)
	assert.Equal(t, 385.0, resp.Subtotal)
	assert.Equal(t, 385.0, resp.Total)
	assert.True(t, resp.Bookable)
	assert.Equal(t, int64(8), *resp.PriceRuleID)
	require.Len(t, resp.Extras, 1)
	assert.Equal(t, "Bebek koltuğu", resp.Extras[0].Name)
}

func TestExecute_NonPositiveExtraIDsAreIgnored(t *testing.T) {
	uc, rules, extras, _ := newTestUseCase()
	ctx := context.Background()

	rules.On("FindApplicable", ctx, int64(1), int64(2), int64(3), today).
		Return(&domain.PriceRule{ID: 8, Price: 180}, nil)
	// каталог не знает id 0 и -1, они не влияют на цену
	extras.On("GetActiveExtraServicesByIDs", ctx, []int64{0, 5, -1}).
		Return([]*domain.ExtraService{{ID: 5, Name: "Bebek koltuğu", Price: 25, IsActive: true}}, nil)

	resp, err := uc.Execute(ctx, &Request{
		FromLocationID:  1,
		ToLocationID:    2,
		VehicleTypeID:   3,
		TripType:        "one-way",
		ExtraServiceIDs: []int64{0, 5, -1, 0},
	})

	require.NoError(t, err)
	assert.Equal(t, 205.0, resp.Total)
	require.Len(t, resp.Extras, 1)
	assert.Equal(t, int64(5), resp.Extras[0].ID)
	extras.AssertExpectations(t)
}

func TestExecute_WithCoupon(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		coupon    *domain.Coupon
		repoErr   error
		wantErr   error
		wantTotal float64
	}{
		{
			name:      "percent coupon",
			coupon:    &domain.Coupon{Code: "SAVE10", DiscountType: domain.DiscountPercent, DiscountValue: 10, IsActive: true},
			wantTotal: 346,
		},
		{
			name:    "missing coupon",
			repoErr: couponRepo.ErrCouponNotFound,
			wantErr: ErrCouponNotFound,
		},
		{
			name:    "inactive coupon",
			coupon:  &domain.Coupon{Code: "SAVE10", DiscountType: domain.DiscountPercent, DiscountValue: 10},
			wantErr: ErrCouponInactive,
		},
		{
			name: "expired coupon",
			coupon: &domain.Coupon{Code: "SAVE10", DiscountType: domain.DiscountPercent, DiscountValue: 10, IsActive: true,
				ExpiresAt: ptr.Ptr(today.Add(-time.Hour))},
			wantErr: ErrCouponExpired,
		},
		{
			name:    "repository failure",
			repoErr: errors.New("connection reset"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, rules, extras, coupons := newTestUseCase()
			rules.On("FindApplicable", ctx, int64(1), int64(2), int64(3), today).Return(&domain.PriceRule{ID: 8, Price: 180}, nil)
			extras.On("GetActiveExtraServicesByIDs", ctx, mock.Anything).Return([]*domain.ExtraService{{ID: 5, Price: 25}}, nil)
			if tt.coupon != nil {
				coupons.On("GetByCode", ctx, "SAVE10").Return(tt.coupon, nil)
			} else {
				coupons.On("GetByCode", ctx, "SAVE10").Return(nil, tt.repoErr)
			}

			req := roundTripRequest()
			req.CouponCode = ptr.Ptr(" SAVE10 ")

			resp, err := uc.Execute(ctx, req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 39.0, resp.Discount)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Equal(t, "SAVE10", *resp.CouponCode)
		})
	}
}

func TestExecute_UnpricedRouteIsNotBookable(t *testing.T) {
	uc, rules, extras, _ := newTestUseCase()
	ctx := context.Background()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	rules.On("FindApplicable", ctx, int64(1), int64(2), int64(3), date).Return(nil, priceRuleRepo.ErrPriceRuleNotFound)
	extras.On("GetActiveExtraServicesByIDs", ctx, []int64{}).Return([]*domain.ExtraService{}, nil)

	resp, err := uc.Execute(ctx, &Request{FromLocationID: 1, ToLocationID: 2, VehicleTypeID: 3, TripType: "one-way", Date: &date})

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Total)
	assert.False(t, resp.Bookable)
	assert.Nil(t, resp.PriceRuleID)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "same locations", req: &Request{FromLocationID: 1, ToLocationID: 1, VehicleTypeID: 3, TripType: "one-way"}},
		{name: "missing vehicle", req: &Request{FromLocationID: 1, ToLocationID: 2, TripType: "one-way"}},
		{name: "unknown trip type", req: &Request{FromLocationID: 1, ToLocationID: 2, VehicleTypeID: 3, TripType: "multi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
