package domain

// Multiplier returns how many times the base price is charged for the trip type
func (t TripType) Multiplier() float64 {
	if t == TripRoundTrip {
		return RoundTripMultiplier
	}
	return 1
}

// Quote is the result of the price computation
type Quote struct {
	BasePrice   float64
	Multiplier  float64
	ExtrasTotal float64
	RawTotal    float64
	Discount    float64
	Total       float64
	CouponCode  *string
}

// IsBookable returns false when no price rule matched the route.
// A zero base price means an unknown route, not a free ride.
func (q *Quote) IsBookable() bool {
	return q.BasePrice > 0
}

// ComputeQuote combines the base price, the trip multiplier, extra services and an optional coupon.
// Extras are added once and are not doubled for round trips.
func ComputeQuote(basePrice float64, tripType TripType, extras []*ExtraService, coupon *Coupon) Quote {
	q := Quote{
		BasePrice:   basePrice,
		Multiplier:  tripType.Multiplier(),
		ExtrasTotal: SumExtras(extras),
	}
	q.RawTotal = q.BasePrice*q.Multiplier + q.ExtrasTotal
	q.Total = q.RawTotal

	if coupon != nil {
		q.Discount = coupon.DiscountFor(q.RawTotal)
		q.Total = q.RawTotal - q.Discount
		code := coupon.Code
		q.CouponCode = &code
	}

	return q
}

// SumExtras sums prices of the given extra services, nil entries contribute 0
func SumExtras(extras []*ExtraService) float64 {
	var sum float64
	for _, e := range extras {
		if e == nil {
			continue
		}
		sum += e.Price
	}
	return sum
}
