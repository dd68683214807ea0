package messages

import "errors"

var (
	// ErrConversationNotFound возвращается, когда переписка для бронирования не создана
	ErrConversationNotFound = errors.New("messages.store: conversation not found")

	// ErrEncode возвращается при ошибке сериализации сообщения
	ErrEncode = errors.New("messages.store: failed to encode message")

	// ErrDecode возвращается при ошибке чтения сообщения из хранилища
	ErrDecode = errors.New("messages.store: failed to decode message")

	// ErrRedis возвращается при ошибке выполнения команды Redis
	ErrRedis = errors.New("messages.store: redis command failed")
)
