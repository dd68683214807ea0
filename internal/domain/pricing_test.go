package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote_RoundTripWithExtra(t *testing.T) {
	extras := []*ExtraService{{ID: 1, Price: 25}}

	q := ComputeQuote(180, TripRoundTrip, extras, nil)

	assert.Equal(t, 2.0, q.Multiplier)
	assert.Equal(t, 25.0, q.ExtrasTotal)
	assert.Equal(t, 385.0, q.RawTotal)
	assert.Equal(t, 385.0, q.Total)
	assert.Nil(t, q.CouponCode)
	assert.True(t, q.IsBookable())
}

func TestComputeQuote_PercentCoupon(t *testing.T) {
	coupon := &Coupon{Code: "SAVE10", DiscountType: DiscountPercent, DiscountValue: 10, IsActive: true}

	q := ComputeQuote(180, TripRoundTrip, []*ExtraService{{Price: 25}}, coupon)

	assert.Equal(t, 39.0, q.Discount)
	assert.Equal(t, 346.0, q.Total)
	assert.Equal(t, "SAVE10", *q.CouponCode)
}

func TestComputeQuote_ExtrasAreNotDoubled(t *testing.T) {
	extras := []*ExtraService{{Price: 25}, {Price: 40}, nil}

	oneWay := ComputeQuote(150, TripOneWay, extras, nil)
	roundTrip := ComputeQuote(150, TripRoundTrip, extras, nil)

	oneWayBase := oneWay.RawTotal - oneWay.ExtrasTotal
	assert.Equal(t, 2*oneWayBase+oneWay.ExtrasTotal, roundTrip.RawTotal)
}

func TestComputeQuote_UnknownRoute(t *testing.T) {
	q := ComputeQuote(0, TripOneWay, nil, nil)

	assert.Equal(t, 0.0, q.Total)
	assert.False(t, q.IsBookable())
}

func TestCoupon_DiscountFor(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		total  float64
		want   float64
	}{
		{"amount below total", Coupon{DiscountType: DiscountAmount, DiscountValue: 50}, 200, 50},
		{"amount capped at total", Coupon{DiscountType: DiscountAmount, DiscountValue: 500}, 200, 200},
		{"percent rounds half up", Coupon{DiscountType: DiscountPercent, DiscountValue: 10}, 385, 39},
		{"percent over hundred capped", Coupon{DiscountType: DiscountPercent, DiscountValue: 150}, 80, 80},
		{"zero total", Coupon{DiscountType: DiscountAmount, DiscountValue: 10}, 0, 0},
		{"unknown type", Coupon{DiscountType: "bogus", DiscountValue: 10}, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.DiscountFor(tt.total)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, tt.total-got, 0.0)
		})
	}
}

func TestCoupon_CheckUsable(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.ErrorIs(t, (&Coupon{IsActive: false}).CheckUsable(now), ErrCouponInactive)
	assert.ErrorIs(t, (&Coupon{IsActive: true, ExpiresAt: &past}).CheckUsable(now), ErrCouponExpired)
	assert.NoError(t, (&Coupon{IsActive: true, ExpiresAt: &future}).CheckUsable(now))
	assert.NoError(t, (&Coupon{IsActive: true}).CheckUsable(now))
}

func TestPriceRule_AppliesAt(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	rule := PriceRule{IsActive: true, ValidFrom: from, ValidTo: &to}

	assert.True(t, rule.AppliesAt(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, rule.AppliesAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, rule.AppliesAt(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))

	rule.IsActive = false
	assert.False(t, rule.AppliesAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}
