package messaging

import "errors"

var (
	// ErrConversationNotFound возвращается, когда нет ни переписки, ни бронирования
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrAccessDenied возвращается, когда пользователь не участник переписки
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректном сообщении
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
