package create_reservation

import (
	"fmt"
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	createReservation "github.com/mfkayan044/securedrive-sub000/internal/usecase/create_reservation"
	"github.com/mfkayan044/securedrive-sub000/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail"`
	CustomerPhone   string   `json:"customerPhone"`
	TripType        string   `json:"tripType"`
	FromLocationID  int64    `json:"fromLocationId"`
	ToLocationID    int64    `json:"toLocationId"`
	VehicleTypeID   int64    `json:"vehicleTypeId"`
	DepartureDate   string   `json:"departureDate"` // "2025-06-01"
	DepartureTime   string   `json:"departureTime"` // "10:30"
	ReturnDate      *string  `json:"returnDate,omitempty"`
	ReturnTime      *string  `json:"returnTime,omitempty"`
	Passengers      int      `json:"passengers"`
	PassengerNames  []string `json:"passengerNames,omitempty"`
	FlightCode      *string  `json:"flightCode,omitempty"`
	ReturnFlight    *string  `json:"returnFlightCode,omitempty"`
	ExtraServiceIDs []int64  `json:"extraServiceIds,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	TotalPrice      *float64 `json:"totalPrice,omitempty"`
	// Только для ручного ввода администратором
	UserID        *int64  `json:"userId,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(source domain.ReservationSource) (*createReservation.Request, error) {
	departureDate, err := time.Parse(domain.DateFormat, r.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departureDate: %w", err)
	}
	departureTime, err := types.NewTimeStringFromString(r.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("departureTime: %w", err)
	}

	req := &createReservation.Request{
		Source:          source,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TripType:        r.TripType,
		FromLocationID:  r.FromLocationID,
		ToLocationID:    r.ToLocationID,
		VehicleTypeID:   r.VehicleTypeID,
		DepartureDate:   departureDate,
		DepartureTime:   departureTime,
		Passengers:      r.Passengers,
		PassengerNames:  r.PassengerNames,
		FlightCode:      r.FlightCode,
		ReturnFlight:    r.ReturnFlight,
		ExtraServiceIDs: r.ExtraServiceIDs,
		Notes:           r.Notes,
		SubmittedTotal:  r.TotalPrice,
	}

	if r.ReturnDate != nil && *r.ReturnDate != "" {
		returnDate, err := time.Parse(domain.DateFormat, *r.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("returnDate: %w", err)
		}
		req.ReturnDate = &returnDate
	}
	if r.ReturnTime != nil && *r.ReturnTime != "" {
		returnTime, err := types.NewTimeStringFromString(*r.ReturnTime)
		if err != nil {
			return nil, fmt.Errorf("returnTime: %w", err)
		}
		req.ReturnTime = &returnTime
	}

	if source == domain.SourceAdmin {
		req.UserID = r.UserID
		req.PaymentStatus = r.PaymentStatus
	}

	return req, nil
}
