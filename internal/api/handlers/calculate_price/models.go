package calculate_price

import (
	"time"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
	calculatePrice "github.com/mfkayan044/securedrive-sub000/internal/usecase/calculate_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	FromLocationID  int64   `json:"fromLocationId"`
	ToLocationID    int64   `json:"toLocationId"`
	VehicleTypeID   int64   `json:"vehicleTypeId"`
	TripType        string  `json:"tripType"`
	ExtraServiceIDs []int64 `json:"extraServiceIds,omitempty"`
	CouponCode      *string `json:"couponCode,omitempty"`
	Date            *string `json:"date,omitempty"` // "2025-06-01"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*calculatePrice.Request, error) {
	req := &calculatePrice.Request{
		FromLocationID:  r.FromLocationID,
		ToLocationID:    r.ToLocationID,
		VehicleTypeID:   r.VehicleTypeID,
		TripType:        r.TripType,
		ExtraServiceIDs: r.ExtraServiceIDs,
		CouponCode:      r.CouponCode,
	}

	if r.Date != nil && *r.Date != "" {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
