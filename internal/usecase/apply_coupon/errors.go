package apply_coupon

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("apply_coupon: reservation not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("apply_coupon: access denied")

	// ErrNotPayable возвращается для оплаченного, отменённого или завершённого бронирования
	ErrNotPayable = errors.New("apply_coupon: reservation is not awaiting payment")

	// ErrCouponNotFound возвращается, когда купона с таким кодом нет
	ErrCouponNotFound = errors.New("apply_coupon: coupon not found")

	// ErrCouponInactive возвращается, когда купон выключен
	ErrCouponInactive = errors.New("apply_coupon: coupon is inactive")

	// ErrCouponExpired возвращается, когда срок действия купона истёк
	ErrCouponExpired = errors.New("apply_coupon: coupon is expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_coupon: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_coupon: internal error")
)
