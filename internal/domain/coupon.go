package domain

import (
	"errors"
	"math"
	"time"
)

// DiscountType тип скидки купона
type DiscountType string

const (
	DiscountAmount  DiscountType = "amount"
	DiscountPercent DiscountType = "percent"
)

// IsValid returns true for known discount types
func (t DiscountType) IsValid() bool {
	return t == DiscountAmount || t == DiscountPercent
}

var (
	// ErrCouponInactive coupon exists but is switched off
	ErrCouponInactive = errors.New("coupon is inactive")

	// ErrCouponExpired coupon exists but its expiry date has passed
	ErrCouponExpired = errors.New("coupon is expired")
)

// Coupon represents a discount code entered at the payment step
type Coupon struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
	ExpiresAt     *time.Time
	IsActive      bool
	// AssignedUserID is informational only, it is not checked when the coupon is applied
	AssignedUserID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsExpired returns true if the coupon has an expiry date before now
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// CheckUsable distinguishes an inactive coupon from an expired one
func (c *Coupon) CheckUsable(now time.Time) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if c.IsExpired(now) {
		return ErrCouponExpired
	}
	return nil
}

// DiscountFor returns the discount for the given pre-discount total.
// The result is never negative and never exceeds the total.
func (c *Coupon) DiscountFor(total float64) float64 {
	if total <= 0 || c.DiscountValue <= 0 {
		return 0
	}

	var discount float64
	switch c.DiscountType {
	case DiscountAmount:
		discount = c.DiscountValue
	case DiscountPercent:
		discount = math.Round(total * c.DiscountValue / 100)
	default:
		return 0
	}

	return math.Min(discount, total)
}
