package lifecycle

import "errors"

var (
	// ErrTerminalState отмененное или завершенное бронирование больше не меняется
	ErrTerminalState = errors.New("lifecycle: reservation is in a terminal state")

	// ErrInvalidTransition переход не разрешен из текущего статуса
	ErrInvalidTransition = errors.New("lifecycle: transition is not allowed")

	// ErrUnknownEvent неизвестное событие
	ErrUnknownEvent = errors.New("lifecycle: unknown event")

	// ErrConfirmNotToday гость может подтвердить бронь только в день визита
	ErrConfirmNotToday = errors.New("lifecycle: reservation can be confirmed only on its date")

	// ErrReservationExpired дата бронирования уже прошла
	ErrReservationExpired = errors.New("lifecycle: reservation date has passed")

	// ErrNotFinished бронирование еще не завершилось по времени
	ErrNotFinished = errors.New("lifecycle: reservation date has not passed yet")

	// ErrDurationLocked длительность меняет только сотрудник
	ErrDurationLocked = errors.New("lifecycle: duration can be changed only by staff")
)
