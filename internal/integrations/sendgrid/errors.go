package sendgrid

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API ключ или адрес отправителя
	ErrNotConfigured = errors.New("sendgrid client: not configured")

	// ErrInvalidRecipient возвращается для пустого адреса получателя
	ErrInvalidRecipient = errors.New("sendgrid client: invalid recipient")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sendgrid client: internal error")

	// ErrRejected возвращается, когда SendGrid ответил ошибкой
	ErrRejected = errors.New("sendgrid client: message rejected")
)
