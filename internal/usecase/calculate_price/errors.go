package calculate_price

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купона с таким кодом нет
	ErrCouponNotFound = errors.New("calculate_price: coupon not found")

	// ErrCouponInactive возвращается, когда купон выключен
	ErrCouponInactive = errors.New("calculate_price: coupon is inactive")

	// ErrCouponExpired возвращается, когда срок действия купона истёк
	ErrCouponExpired = errors.New("calculate_price: coupon is expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
