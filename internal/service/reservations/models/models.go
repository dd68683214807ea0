package models

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// Request модели

// ActionRequest запрос на действие над бронированием
type ActionRequest struct {
	Action             string  `json:"action"`
	DriverID           *int64  `json:"driverId,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ListRequest фильтр списка бронирований
// UserID/DriverID для клиента и водителя подставляются сервисом
type ListRequest struct {
	Status        *string    `json:"status,omitempty"`
	PaymentStatus *string    `json:"paymentStatus,omitempty"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
	DriverID      *int64     `json:"driverId,omitempty"`
	UserID        *int64     `json:"userId,omitempty"`
	Limit         uint64     `json:"limit,omitempty"`
	Offset        uint64     `json:"offset,omitempty"`
}

// Response модели

// ExtraResponse дополнительная услуга бронирования
type ExtraResponse struct {
	ExtraServiceID int64   `json:"extraServiceId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 int64            `json:"id"`
	ReservationNumber  string           `json:"reservationNumber"`
	UserID             *int64           `json:"userId,omitempty"`
	DriverID           *int64           `json:"driverId,omitempty"`
	Source             string           `json:"source"`
	CustomerName       string           `json:"customerName"`
	CustomerEmail      string           `json:"customerEmail"`
	CustomerPhone      string           `json:"customerPhone"`
	TripType           string           `json:"tripType"`
	FromLocationID     int64            `json:"fromLocationId"`
	ToLocationID       int64            `json:"toLocationId"`
	VehicleTypeID      int64            `json:"vehicleTypeId"`
	DepartureDate      string           `json:"departureDate"` // "2025-10-15"
	DepartureTime      string           `json:"departureTime"` // "10:00"
	ReturnDate         *string          `json:"returnDate,omitempty"`
	ReturnTime         *string          `json:"returnTime,omitempty"`
	Passengers         int              `json:"passengers"`
	PassengerNames     []string         `json:"passengerNames"`
	FlightCode         *string          `json:"flightCode,omitempty"`
	ReturnFlightCode   *string          `json:"returnFlightCode,omitempty"`
	Extras             []*ExtraResponse `json:"extras"`
	TotalPrice         float64          `json:"totalPrice"`
	CouponCode         *string          `json:"couponCode,omitempty"`
	DiscountAmount     float64          `json:"discountAmount"`
	PayableTotal       float64          `json:"payableTotal"`
	Status             string           `json:"status"`
	PaymentStatus      string           `json:"paymentStatus"`
	Notes              *string          `json:"notes,omitempty"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	AvailableActions   []string         `json:"availableActions"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// ActionResponse результат действия над бронированием
type ActionResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Notice      string               `json:"notice"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в ответ
// Доступные действия вычисляются для роли того, кто запрашивает
func FromDomainReservation(r *domain.Reservation, role domain.Role) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 r.ID,
		ReservationNumber:  r.ReservationNumber,
		UserID:             r.UserID,
		DriverID:           r.DriverID,
		Source:             string(r.Source),
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		TripType:           string(r.TripType),
		FromLocationID:     r.FromLocation,
		ToLocationID:       r.ToLocation,
		VehicleTypeID:      r.VehicleTypeID,
		DepartureDate:      r.DepartureDate.Format(domain.DateFormat),
		DepartureTime:      r.DepartureTime.String(),
		Passengers:         r.Passengers,
		PassengerNames:     domain.ResizePassengerNames(r.PassengerNames, r.Passengers),
		FlightCode:         r.FlightCode,
		ReturnFlightCode:   r.ReturnFlight,
		Extras:             make([]*ExtraResponse, 0, len(r.Extras)),
		TotalPrice:         r.TotalPrice,
		CouponCode:         r.CouponCode,
		DiscountAmount:     r.DiscountAmount,
		PayableTotal:       r.PayableTotal(),
		Status:             string(r.Status),
		PaymentStatus:      string(r.PaymentStatus),
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		AvailableActions:   make([]string, 0),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.ReturnDate != nil {
		d := r.ReturnDate.Format(domain.DateFormat)
		resp.ReturnDate = &d
	}
	if r.ReturnTime != nil && !r.ReturnTime.IsZero() {
		t := r.ReturnTime.String()
		resp.ReturnTime = &t
	}

	for _, e := range r.Extras {
		resp.Extras = append(resp.Extras, &ExtraResponse{
			ExtraServiceID: e.ExtraServiceID,
			Name:           e.Name,
			Price:          e.Price,
		})
	}

	for _, a := range domain.AvailableActions(r.Status, role) {
		resp.AvailableActions = append(resp.AvailableActions, string(a))
	}

	return resp
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation, role domain.Role) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r, role))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}
