package domain

import "github.com/m04kA/SMC-TableReservation/pkg/types"

// Значения по умолчанию
const (
	DefaultDurationMinutes = 180 // 3 часа
	DefaultOpeningTime     = types.TimeString("10:00")
	DefaultLastStartTime   = types.TimeString("22:00")
)

// Ограничения бизнес-валидации
const (
	MinGuestsCount     = 1
	MinDurationMinutes = 30
	MaxDurationMinutes = 720 // 12 часов
	MaxEventLength     = 500
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// BlockingStatuses статусы, удерживающие слот при проверке доступности
var BlockingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}

// ActiveStatuses статусы, из которых возможны переходы
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
