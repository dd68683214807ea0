package apply_coupon

import "github.com/mfkayan044/securedrive-sub000/internal/domain"

// Request модель запроса на применение купона на шаге оплаты
type Request struct {
	ReservationID int64
	Actor         domain.Actor
	Code          string
}

// Response итог к оплате после скидки
type Response struct {
	ReservationID int64   `json:"reservationId"`
	CouponCode    string  `json:"couponCode"`
	TotalPrice    float64 `json:"totalPrice"`
	Discount      float64 `json:"discount"`
	PayableTotal  float64 `json:"payableTotal"`
}
