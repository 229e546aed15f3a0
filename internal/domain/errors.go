package domain

import "errors"

var (
	// ErrUnknownStatus возвращается при разборе неизвестного статуса бронирования
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownRole возвращается при разборе неизвестной роли пользователя
	ErrUnknownRole = errors.New("domain: unknown role")
)
