package catalog

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrVehicleTypeNotFound возвращается, когда тип автомобиля не найден
	ErrVehicleTypeNotFound = errors.New("vehicle type not found")

	// ErrExtraServiceNotFound возвращается, когда дополнительная услуга не найдена
	ErrExtraServiceNotFound = errors.New("extra service not found")

	// ErrPriceRuleNotFound возвращается, когда правило цены не найдено
	ErrPriceRuleNotFound = errors.New("price rule not found")

	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponCodeTaken возвращается, когда купон с таким кодом уже существует
	ErrCouponCodeTaken = errors.New("coupon code already exists")

	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("driver not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
