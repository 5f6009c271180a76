package lifecycle

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// Event событие жизненного цикла бронирования
type Event string

const (
	EventConfirm  Event = "confirm"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
)

// Patch изменения бронирования; nil - поле не меняется
type Patch struct {
	TableID         *int64
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	GuestsCount     *int
	Event           *string
}

// InitialStatus бронь на сегодня сразу подтверждена, на будущее - ожидает подтверждения
func InitialStatus(date, today time.Time) domain.ReservationStatus {
	if sameDay(date, today) {
		return domain.StatusConfirmed
	}
	return domain.StatusPending
}

// Transition вычисляет новый статус бронирования по событию.
// Бронирование не изменяется. Проверка доступности слота при подтверждении
// выполняется вызывающим кодом.
func Transition(r *domain.Reservation, event Event, actor domain.Actor, today time.Time) (domain.ReservationStatus, error) {
	if r.IsTerminal() {
		return r.Status, fmt.Errorf("%w: %s", ErrTerminalState, r.Status)
	}

	switch event {
	case EventConfirm:
		return confirm(r, actor, today)
	case EventCancel:
		return domain.StatusCanceled, nil
	case EventComplete:
		if r.Status != domain.StatusConfirmed {
			return r.Status, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, domain.StatusCompleted)
		}
		if !r.Date.Before(dateOnly(today)) {
			return r.Status, ErrNotFinished
		}
		return domain.StatusCompleted, nil
	default:
		return r.Status, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
}

func confirm(r *domain.Reservation, actor domain.Actor, today time.Time) (domain.ReservationStatus, error) {
	if r.Status != domain.StatusPending {
		return r.Status, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, domain.StatusConfirmed)
	}

	if r.Date.Before(dateOnly(today)) {
		return r.Status, ErrReservationExpired
	}

	if !actor.IsStaff() && !sameDay(r.Date, today) {
		return r.Status, ErrConfirmNotToday
	}

	return domain.StatusConfirmed, nil
}

// ApplyEdit возвращает копию бронирования с примененными изменениями.
// Статус сохраняется. Длительность может изменить только сотрудник,
// после этого флаг ExtendedByAdmin остается установленным навсегда.
func ApplyEdit(existing *domain.Reservation, patch Patch, actor domain.Actor) (*domain.Reservation, error) {
	if existing.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrTerminalState, existing.Status)
	}

	updated := existing.Clone()

	if patch.DurationMinutes != nil && *patch.DurationMinutes != existing.DurationMinutes {
		if !actor.IsStaff() {
			return nil, rules.NewFieldError(rules.FieldDuration, ErrDurationLocked)
		}
		updated.DurationMinutes = *patch.DurationMinutes
		updated.ExtendedByAdmin = true
	}

	if patch.TableID != nil {
		updated.TableID = *patch.TableID
	}
	if patch.Date != nil {
		updated.Date = dateOnly(*patch.Date)
	}
	if patch.StartTime != nil {
		updated.StartTime = *patch.StartTime
	}
	if patch.GuestsCount != nil {
		updated.GuestsCount = *patch.GuestsCount
	}
	if patch.Event != nil {
		updated.Event = patch.Event
		if *patch.Event == "" {
			updated.Event = nil
		}
	}

	if actor.IsStaff() {
		staffID := actor.UserID
		updated.StaffUserID = &staffID
	}

	return updated, nil
}

// IsEmpty возвращает true, если патч ничего не меняет
func (p Patch) IsEmpty() bool {
	return p.TableID == nil && p.Date == nil && p.StartTime == nil &&
		p.DurationMinutes == nil && p.GuestsCount == nil && p.Event == nil
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
