package halls

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("halls: hall not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("halls: internal error")
)
