package domain

import "time"

// VehicleType represents a bookable vehicle class
type VehicleType struct {
	ID          int64
	Name        string
	Capacity    int
	Description *string
	Image       *string
	Features    []string
	BasePrice   float64
	IsActive    bool
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fits returns true if the vehicle can carry the given number of passengers
func (v *VehicleType) Fits(passengers int) bool {
	return v.Capacity <= 0 || passengers <= v.Capacity
}
