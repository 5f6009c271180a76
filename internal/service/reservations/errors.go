package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("reservations: access denied")

	// ErrTransitionRejected возвращается, когда событие недопустимо для текущего статуса
	ErrTransitionRejected = errors.New("reservations: status transition rejected")

	// ErrNothingToUpdate возвращается, когда правка не содержит изменений
	ErrNothingToUpdate = errors.New("reservations: nothing to update")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
