package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	RoundTripMultiplier         = 2
	MaxPercentDiscount          = 100
	MaxNotesLength              = 1000
	MaxCancellationReasonLength = 500
	MaxMessageLength            = 2000
	MaxCouponCodeLength         = 64
	ReservationNumberLength     = 8
)

// Role роль пользователя, от имени которого выполняется действие
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// Actor identifies who performs an operation
type Actor struct {
	UserID int64
	Role   Role
}
