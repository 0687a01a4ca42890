package store

import "errors"

var (
	// ErrInvalidDate - такой даты нет в календаре (например, 31 число 30-дневного месяца).
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnsupportedCountry - страны нет в таблице. Это ошибка программиста, а не пользователя.
	ErrUnsupportedCountry = errors.New("unsupported country")
)
