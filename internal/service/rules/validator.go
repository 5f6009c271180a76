package rules

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/availability"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// TimeProvider источник текущей даты
type TimeProvider interface {
	Today() time.Time
}

// ExistingLoader загружает бронирования того же столика на ту же дату
// Вызывается только после успешных дешевых проверок полей
type ExistingLoader func() ([]*domain.Reservation, error)

// WorkingHours допустимый диапазон времени начала, включительно с обеих сторон
type WorkingHours struct {
	Opening   types.TimeString
	LastStart types.TimeString
}

// DefaultWorkingHours 10:00-22:00 (ресторан закрывается в 23:00)
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Opening:   domain.DefaultOpeningTime,
		LastStart: domain.DefaultLastStartTime,
	}
}

// Candidate проверяемое бронирование вместе со столиком
type Candidate struct {
	Reservation *domain.Reservation
	Table       *domain.Table // nil - столик не найден
	// AllowInactiveTable разрешает неактивный столик, если бронь на нем уже была
	AllowInactiveTable bool
}

// Validator бизнес-правила бронирования
type Validator struct {
	clock TimeProvider
	hours WorkingHours
}

// NewValidator создает валидатор
func NewValidator(clock TimeProvider, hours WorkingHours) *Validator {
	return &Validator{clock: clock, hours: hours}
}

// Validate последовательно проверяет дату, время, количество гостей,
// длительность, столик и доступность слота. Останавливается на первой ошибке.
// Дешевые проверки полей идут раньше загрузки существующих бронирований.
func (v *Validator) Validate(c Candidate, load ExistingLoader) error {
	r := c.Reservation

	if err := v.ValidateDate(r.Date); err != nil {
		return err
	}

	if err := v.ValidateWorkingHours(r.StartTime); err != nil {
		return err
	}

	if err := v.ValidateGuestsCount(r, c.Table); err != nil {
		return err
	}

	if err := v.ValidateDuration(r.DurationMinutes); err != nil {
		return err
	}

	if err := v.ValidateTable(c.Table, c.AllowInactiveTable); err != nil {
		return err
	}

	return v.ValidateAvailability(r, load)
}

// ValidateGuestsCount количество гостей от 1 до вместимости столика
// Без столика проверяется только нижняя граница
func (v *Validator) ValidateGuestsCount(r *domain.Reservation, table *domain.Table) error {
	switch {
	case r.GuestsCount == 0:
		return NewFieldError(FieldGuestsCount, ErrGuestsCountRequired)
	case r.GuestsCount < domain.MinGuestsCount:
		return NewFieldError(FieldGuestsCount, ErrTooFewGuests)
	case table != nil && !table.CanSeat(r.GuestsCount):
		return NewFieldError(FieldGuestsCount,
			fmt.Errorf("%w: %d guests, capacity %d", ErrTooManyGuests, r.GuestsCount, table.Capacity))
	}
	return nil
}

// ValidateDate дата задана и не раньше сегодняшней
func (v *Validator) ValidateDate(date time.Time) error {
	if date.IsZero() {
		return NewFieldError(FieldDate, ErrDateRequired)
	}
	if isDateInPast(date, v.clock.Today()) {
		return NewFieldError(FieldDate, ErrDateInPast)
	}
	return nil
}

// ValidateWorkingHours время начала в диапазоне [Opening, LastStart]
func (v *Validator) ValidateWorkingHours(start types.TimeString) error {
	if start.IsZero() {
		return NewFieldError(FieldStartTime, ErrStartTimeRequired)
	}
	if err := start.Validate(); err != nil {
		return NewFieldError(FieldStartTime, err)
	}
	if start.IsBefore(v.hours.Opening) || start.IsAfter(v.hours.LastStart) {
		return NewFieldError(FieldStartTime,
			fmt.Errorf("%w: %s, allowed %s-%s", ErrOutsideWorkingHours, start, v.hours.Opening, v.hours.LastStart))
	}
	return nil
}

// ValidateDuration длительность в допустимых пределах
func (v *Validator) ValidateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes {
		return NewFieldError(FieldDuration,
			fmt.Errorf("%w: %d minutes, allowed %d-%d", ErrInvalidDuration, minutes,
				domain.MinDurationMinutes, domain.MaxDurationMinutes))
	}
	return nil
}

// ValidateTable столик найден и доступен для бронирования
func (v *Validator) ValidateTable(table *domain.Table, allowInactive bool) error {
	if table == nil {
		return NewFieldError(FieldTable, ErrTableRequired)
	}
	if !table.IsActive && !allowInactive {
		return NewFieldError(FieldTable, ErrTableInactive)
	}
	return nil
}

// ValidateAvailability загружает бронирования столика и проверяет пересечения
func (v *Validator) ValidateAvailability(r *domain.Reservation, load ExistingLoader) error {
	var existing []*domain.Reservation
	if load != nil {
		loaded, err := load()
		if err != nil {
			return err
		}
		existing = loaded
	}

	if err := availability.Check(r, existing); err != nil {
		return NewFieldError(FieldTable, err)
	}
	return nil
}

// isDateInPast сравнивает только календарные даты
func isDateInPast(date, today time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.Date()
	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	todayOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(todayOnly)
}
