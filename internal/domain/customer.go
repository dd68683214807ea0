package domain

import "time"

// Customer represents a registered customer
type Customer struct {
	ID               int64
	FullName         string
	Email            string
	Phone            *string
	LoyaltyPoints    int
	ReservationCount int
	Language         string
	EmailVerified    bool
	PhoneVerified    bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
