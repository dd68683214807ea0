package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxPassengers int) error {
	if req.Source != domain.SourceWeb && req.Source != domain.SourceAdmin {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if !domain.TripType(req.TripType).IsValid() {
		return fmt.Errorf("%w: unknown trip type %q", ErrInvalidInput, req.TripType)
	}

	if req.FromLocationID <= 0 || req.ToLocationID <= 0 {
		return fmt.Errorf("%w: location ids must be positive", ErrInvalidInput)
	}

	if req.FromLocationID == req.ToLocationID {
		return fmt.Errorf("%w: pickup and drop-off must differ", ErrInvalidInput)
	}

	if req.VehicleTypeID <= 0 {
		return fmt.Errorf("%w: vehicleTypeID must be positive", ErrInvalidInput)
	}

	if req.Passengers < 1 || req.Passengers > maxPassengers {
		return fmt.Errorf("%w: passengers must be between 1 and %d", ErrInvalidInput, maxPassengers)
	}

	if req.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departure date is required", ErrInvalidInput)
	}

	if req.DepartureTime.IsZero() {
		return fmt.Errorf("%w: departure time is required", ErrInvalidInput)
	}
	if err := req.DepartureTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid departure time: %v", ErrInvalidInput, err)
	}

	if domain.TripType(req.TripType) == domain.TripRoundTrip {
		if req.ReturnDate == nil || req.ReturnTime == nil || req.ReturnTime.IsZero() {
			return fmt.Errorf("%w: return date and time are required for round trip", ErrInvalidInput)
		}
		if err := req.ReturnTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid return time: %v", ErrInvalidInput, err)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.PaymentStatus != nil {
		if req.Source != domain.SourceAdmin {
			return fmt.Errorf("%w: payment status can only be set by admin", ErrInvalidInput)
		}
		if !domain.PaymentStatus(*req.PaymentStatus).IsValid() {
			return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *req.PaymentStatus)
		}
	}

	return nil
}

// validateDates проверяет, что отправление не в прошлом, а возврат не раньше отправления
func validateDates(req *Request, now time.Time) error {
	if isDateInPast(req.DepartureDate, now) {
		return fmt.Errorf("%w: departure date is in the past", ErrInvalidDate)
	}

	if domain.TripType(req.TripType) != domain.TripRoundTrip {
		return nil
	}

	departure, err := req.DepartureTime.On(req.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: invalid departure time: %v", ErrInvalidInput, err)
	}
	ret, err := req.ReturnTime.On(*req.ReturnDate)
	if err != nil {
		return fmt.Errorf("%w: invalid return time: %v", ErrInvalidInput, err)
	}

	if ret.Before(departure) {
		return fmt.Errorf("%w: return is before departure", ErrInvalidDate)
	}

	return nil
}

// isDateInPast сравнивает только календарные даты
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Before(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC))
}

// sameAmount сравнивает суммы с точностью до копейки
func sameAmount(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.005
}

// cleanOptional обрезает пробелы, пустая строка превращается в nil
func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
