package domain

import "time"

// PriceRule maps a route and a vehicle type to a base price
type PriceRule struct {
	ID            int64
	FromLocation  int64
	ToLocation    int64
	VehicleTypeID int64
	Price         float64
	IsActive      bool
	ValidFrom     time.Time
	ValidTo       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppliesAt returns true if the rule is active and the date is inside its validity window.
// Only the calendar date is compared.
func (r *PriceRule) AppliesAt(date time.Time) bool {
	if !r.IsActive {
		return false
	}
	d := dateOnly(date)
	if d.Before(dateOnly(r.ValidFrom)) {
		return false
	}
	if r.ValidTo != nil && d.After(dateOnly(*r.ValidTo)) {
		return false
	}
	return true
}

// PriceRuleFilter фильтр списка правил для админки
type PriceRuleFilter struct {
	FromLocation  *int64
	ToLocation    *int64
	VehicleTypeID *int64
	ActiveOnly    bool
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
