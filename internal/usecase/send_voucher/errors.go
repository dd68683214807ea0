package send_voucher

import "errors"

var (
	// ErrMalformedDetails возвращается, когда reservationDetails не JSON объект
	ErrMalformedDetails = errors.New("send_voucher: malformed reservation details")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("send_voucher: reservation not found")

	// ErrAccessDenied возвращается, когда бронирование чужое
	ErrAccessDenied = errors.New("send_voucher: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_voucher: invalid input data")

	// ErrSendFailed возвращается, когда почтовый сервис не принял письмо
	ErrSendFailed = errors.New("send_voucher: failed to send email")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_voucher: internal error")
)
