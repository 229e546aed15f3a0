package provider

import "errors"

var (
	// ErrProfileNotFound возвращается, когда у пользователя нет профиля исполнителя
	ErrProfileNotFound = errors.New("provider.repository: provider profile not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")
)
