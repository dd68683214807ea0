package create_reservation

import "errors"

var (
	// ErrVehicleTypeNotFound возвращается, когда тип автомобиля не найден или выключен
	ErrVehicleTypeNotFound = errors.New("create_reservation: vehicle type not found")

	// ErrTooManyPassengers возвращается, когда пассажиры не помещаются в автомобиль
	ErrTooManyPassengers = errors.New("create_reservation: too many passengers for vehicle")

	// ErrRouteNotPriced возвращается, когда для маршрута нет цены
	ErrRouteNotPriced = errors.New("create_reservation: route is not priced")

	// ErrPriceMismatch возвращается, когда присланная сумма не совпадает с пересчитанной
	ErrPriceMismatch = errors.New("create_reservation: submitted total does not match")

	// ErrInvalidDate возвращается для даты в прошлом или возврата раньше отправления
	ErrInvalidDate = errors.New("create_reservation: invalid trip date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
