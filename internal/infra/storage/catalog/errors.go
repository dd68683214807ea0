package catalog

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("catalog.repository: location not found")

	// ErrVehicleTypeNotFound возвращается, когда тип автомобиля не найден
	ErrVehicleTypeNotFound = errors.New("catalog.repository: vehicle type not found")

	// ErrExtraServiceNotFound возвращается, когда дополнительная услуга не найдена
	ErrExtraServiceNotFound = errors.New("catalog.repository: extra service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
