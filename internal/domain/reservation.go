package domain

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/pkg/types"
)

// TripType one-way or round-trip
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// IsValid returns true for known trip types
func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// IsValid returns true for known payment statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	}
	return false
}

// ReservationSource канал, через который создано бронирование
type ReservationSource string

const (
	SourceWeb   ReservationSource = "web"
	SourceAdmin ReservationSource = "admin"
)

// Reservation represents a transfer booking
type Reservation struct {
	ID                int64
	ReservationNumber string
	UserID            *int64
	DriverID          *int64
	Source            ReservationSource

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	TripType      TripType
	FromLocation  int64
	ToLocation    int64
	VehicleTypeID int64

	DepartureDate time.Time
	DepartureTime types.TimeString
	ReturnDate    *time.Time
	ReturnTime    *types.TimeString

	Passengers     int
	PassengerNames []string
	FlightCode     *string
	ReturnFlight   *string

	TotalPrice     float64
	CouponCode     *string
	DiscountAmount float64

	Status             ReservationStatus
	PaymentStatus      PaymentStatus
	Notes              *string
	CancellationReason *string

	// Extras are loaded separately from reservation_extras
	Extras []ReservationExtra

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationExtra denormalized extra service attached to a reservation
type ReservationExtra struct {
	ExtraServiceID int64
	Name           string
	Price          float64
}

// PayableTotal returns the total after the payment-step coupon discount
func (r *Reservation) PayableTotal() float64 {
	total := r.TotalPrice - r.DiscountAmount
	if total < 0 {
		return 0
	}
	return total
}

// IsOwnedBy returns true if the reservation belongs to the customer
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID != nil && *r.UserID == userID
}

// IsAssignedTo returns true if the reservation is assigned to the driver
func (r *Reservation) IsAssignedTo(driverID int64) bool {
	return r.DriverID != nil && *r.DriverID == driverID
}

// ExtraIDs returns ids of attached extra services
func (r *Reservation) ExtraIDs() []int64 {
	ids := make([]int64, 0, len(r.Extras))
	for _, e := range r.Extras {
		ids = append(ids, e.ExtraServiceID)
	}
	return ids
}

// ReservationFilter фильтр списка бронирований
type ReservationFilter struct {
	UserID        *int64
	DriverID      *int64
	Status        *ReservationStatus
	PaymentStatus *PaymentStatus
	From          *time.Time // departure_date >= From
	To            *time.Time // departure_date <= To
	Limit         uint64
	Offset        uint64
}
