package domain

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCanceled  ReservationStatus = "canceled"
	StatusCompleted ReservationStatus = "completed"
)

// ReservationSource кем оформлено бронирование
type ReservationSource string

const (
	SourceGuest ReservationSource = "guest"
	SourceAdmin ReservationSource = "admin"
)

// Reservation бронирование одного столика на одну дату и время
type Reservation struct {
	ID              int64
	TableID         int64
	UserID          int64
	Date            time.Time // календарная дата, полночь UTC
	StartTime       types.TimeString
	DurationMinutes int
	GuestsCount     int
	Status          ReservationStatus
	Source          ReservationSource
	Event           *string // повод, например день рождения
	ExtendedByAdmin bool
	StaffUserID     *int64 // сотрудник, последним изменявший бронь

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration длительность бронирования
func (r *Reservation) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

// EndTime время окончания, вычисляется из начала и длительности и нигде не хранится
func (r *Reservation) EndTime() types.TimeString {
	return EndOf(r.Date, r.StartTime, r.Duration())
}

// Interval занимаемый бронированием полуинтервал [start, end)
func (r *Reservation) Interval() (Interval, error) {
	return NewInterval(r.Date, r.StartTime, r.Duration())
}

// IsNew возвращает true для ещё не сохраненного бронирования
func (r *Reservation) IsNew() bool {
	return r.ID == 0
}

// IsTerminal возвращает true для статусов, из которых нет переходов
func (r *Reservation) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// HoldsSlot возвращает true, если бронирование занимает слот при проверке доступности
func (r *Reservation) HoldsSlot() bool {
	return r.Status.HoldsSlot()
}

// Clone возвращает независимую копию бронирования
func (r *Reservation) Clone() *Reservation {
	c := *r
	if r.Event != nil {
		event := *r.Event
		c.Event = &event
	}
	if r.StaffUserID != nil {
		staff := *r.StaffUserID
		c.StaffUserID = &staff
	}
	return &c
}

// IsValid проверяет, что статус известен
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal отмененные и завершенные бронирования больше не меняют статус
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCanceled || s == StatusCompleted
}

// HoldsSlot ожидающие подтверждения и отмененные брони слот не удерживают
func (s ReservationStatus) HoldsSlot() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// IsValid проверяет, что источник известен
func (s ReservationSource) IsValid() bool {
	return s == SourceGuest || s == SourceAdmin
}

// ReservationsFilter фильтр списка бронирований
type ReservationsFilter struct {
	UserID   *int64             // nil - все пользователи
	TableID  *int64             // nil - все столики
	Date     *time.Time         // конкретная дата
	Statuses []ReservationStatus // пусто - любые статусы
}

// StatusTransitionFilter выборка для пакетной смены статуса
type StatusTransitionFilter struct {
	FromStatus ReservationStatus
	DateBefore time.Time // строго раньше этой даты
}
