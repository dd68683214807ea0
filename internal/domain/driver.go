package domain

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/pkg/types"
)

// Driver represents a transfer driver.
// Drivers authenticate with their driver id as X-User-ID.
type Driver struct {
	ID             int64
	FullName       string
	Email          *string
	Phone          string
	LicenseNumber  string
	VehiclePlate   string
	VehicleModel   *string
	VehicleYear    *int
	VehicleColor   *string
	WorkStart      types.TimeString
	WorkEnd        types.TimeString
	Languages      []string
	Rating         float64
	TotalTrips     int
	CompletedTrips int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WorksAt returns true if the time falls into the driver's working window.
// A window that ends before it starts wraps past midnight.
func (d *Driver) WorksAt(t types.TimeString) bool {
	if d.WorkStart.IsZero() || d.WorkEnd.IsZero() {
		return true
	}
	if d.WorkStart.IsBefore(d.WorkEnd) {
		return !t.IsBefore(d.WorkStart) && !t.IsAfter(d.WorkEnd)
	}
	return !t.IsBefore(d.WorkStart) || !t.IsAfter(d.WorkEnd)
}
