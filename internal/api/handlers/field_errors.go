package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableReservation/internal/service/availability"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
)

// Сообщения об ошибках валидации брони
const (
	msgDateRequired        = "укажите дату бронирования"
	msgDateInPast          = "нельзя забронировать столик на прошедшую дату"
	msgStartTimeRequired   = "укажите время начала"
	msgOutsideWorkingHours = "время начала вне часов работы ресторана"
	msgGuestsRequired      = "укажите количество гостей"
	msgTooFewGuests        = "количество гостей должно быть не меньше 1"
	msgTooManyGuests       = "количество гостей превышает вместимость столика"
	msgInvalidDuration     = "недопустимая длительность бронирования"
	msgDurationLocked      = "изменить длительность может только администратор"
	msgTableRequired       = "выберите столик"
	msgTableInactive       = "столик недоступен для бронирования"
	msgSlotTaken           = "столик на это время только что забронировали, попробуйте еще раз"
	msgTableBooked         = "столик уже забронирован на это время"
	msgInvalidField        = "некорректное значение поля"
)

var fieldMessages = []struct {
	err error
	msg string
}{
	// ErrSlotTaken оборачивает ErrConflict, поэтому проверяется раньше
	{availability.ErrSlotTaken, msgSlotTaken},
	{availability.ErrConflict, msgTableBooked},
	{rules.ErrDateRequired, msgDateRequired},
	{rules.ErrDateInPast, msgDateInPast},
	{rules.ErrStartTimeRequired, msgStartTimeRequired},
	{rules.ErrOutsideWorkingHours, msgOutsideWorkingHours},
	{rules.ErrGuestsCountRequired, msgGuestsRequired},
	{rules.ErrTooFewGuests, msgTooFewGuests},
	{rules.ErrTooManyGuests, msgTooManyGuests},
	{rules.ErrInvalidDuration, msgInvalidDuration},
	{lifecycle.ErrDurationLocked, msgDurationLocked},
	{rules.ErrTableRequired, msgTableRequired},
	{rules.ErrTableInactive, msgTableInactive},
}

// FieldErrorMessage сообщение для пользователя по ошибке валидации
func FieldErrorMessage(err error) string {
	for _, m := range fieldMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return msgInvalidField
}

// RespondFieldError 400 для ошибки поля, 409 для занятого столика.
// При известном пересечении в ответ добавляется занятый интервал.
func RespondFieldError(w http.ResponseWriter, fieldErr *rules.FieldError) {
	resp := ErrorResponse{
		Error: FieldErrorMessage(fieldErr),
		Field: string(fieldErr.Field),
	}

	status := http.StatusBadRequest
	if errors.Is(fieldErr, availability.ErrConflict) {
		status = http.StatusConflict

		var conflict *availability.ConflictError
		if errors.As(fieldErr, &conflict) {
			resp.Conflict = &ConflictInterval{
				ReservationID: conflict.ReservationID,
				StartTime:     conflict.Interval.StartTime().String(),
				EndTime:       conflict.Interval.EndTime().String(),
			}
		}
	}

	RespondJSON(w, status, resp)
}

// Сообщения об отказе в смене статуса
const (
	msgTerminalState     = "бронь уже отменена или завершена"
	msgInvalidTransition = "действие недоступно для брони в текущем статусе"
	msgConfirmNotToday   = "подтвердить бронь можно только в день бронирования"
	msgExpired           = "дата бронирования уже прошла"
	msgNotFinished       = "бронь еще не завершилась"
	msgUnknownEvent      = "неизвестное действие"
)

// TransitionErrorMessage сообщение для пользователя по отказу жизненного цикла
func TransitionErrorMessage(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrTerminalState):
		return msgTerminalState
	case errors.Is(err, lifecycle.ErrConfirmNotToday):
		return msgConfirmNotToday
	case errors.Is(err, lifecycle.ErrReservationExpired):
		return msgExpired
	case errors.Is(err, lifecycle.ErrNotFinished):
		return msgNotFinished
	case errors.Is(err, lifecycle.ErrUnknownEvent):
		return msgUnknownEvent
	}
	return msgInvalidTransition
}
