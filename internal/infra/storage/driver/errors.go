package driver

import "errors"

var (
	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("driver.repository: driver not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("driver.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("driver.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("driver.repository: failed to scan row")
)
