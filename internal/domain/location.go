package domain

import "time"

// LocationType категория точки маршрута
type LocationType string

const (
	LocationAirport  LocationType = "airport"
	LocationDistrict LocationType = "district"
	LocationHotel    LocationType = "hotel"
	LocationLandmark LocationType = "landmark"
)

// IsValid returns true for known location types
func (t LocationType) IsValid() bool {
	switch t {
	case LocationAirport, LocationDistrict, LocationHotel, LocationLandmark:
		return true
	}
	return false
}

// Location represents a pickup or drop-off point
type Location struct {
	ID        int64
	Name      string
	Type      LocationType
	Address   *string
	IsActive  bool
	Priority  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
