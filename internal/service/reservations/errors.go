package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда бронирование не принадлежит пользователю или водителю
	ErrAccessDenied = errors.New("access denied")

	// ErrUnknownAction возвращается для действия, которого нет в жизненном цикле
	ErrUnknownAction = errors.New("unknown reservation action")

	// ErrActionForbidden возвращается, когда роль не может выполнять действие
	ErrActionForbidden = errors.New("action is not allowed for role")

	// ErrInvalidTransition возвращается, когда действие не определено для текущего статуса
	// Исходная domain.TransitionError доступна через errors.As
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusChanged возвращается, когда статус изменили параллельно
	ErrStatusChanged = errors.New("reservation status changed concurrently")

	// ErrDriverRequired возвращается, когда для назначения не указан водитель
	ErrDriverRequired = errors.New("driver id is required to assign")

	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("driver not found")

	// ErrDriverInactive возвращается при назначении неактивного водителя
	ErrDriverInactive = errors.New("driver is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
