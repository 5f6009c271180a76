package rules

import (
	"errors"
	"fmt"
)

// Field поле бронирования, к которому относится ошибка валидации
type Field string

const (
	FieldDate        Field = "date"
	FieldStartTime   Field = "start_time"
	FieldGuestsCount Field = "guests_count"
	FieldDuration    Field = "duration"
	FieldTable       Field = "table"
)

var (
	// ErrDateRequired дата не указана
	ErrDateRequired = errors.New("rules: date is required")

	// ErrDateInPast дата раньше сегодняшней
	ErrDateInPast = errors.New("rules: date is in the past")

	// ErrStartTimeRequired время начала не указано
	ErrStartTimeRequired = errors.New("rules: start time is required")

	// ErrOutsideWorkingHours время начала вне рабочих часов
	ErrOutsideWorkingHours = errors.New("rules: start time is outside working hours")

	// ErrGuestsCountRequired количество гостей не указано
	ErrGuestsCountRequired = errors.New("rules: guests count is required")

	// ErrTooFewGuests гостей меньше одного
	ErrTooFewGuests = errors.New("rules: guests count must be at least 1")

	// ErrTooManyGuests гостей больше вместимости столика
	ErrTooManyGuests = errors.New("rules: guests count exceeds table capacity")

	// ErrInvalidDuration длительность вне допустимых пределов
	ErrInvalidDuration = errors.New("rules: invalid duration")

	// ErrTableRequired столик не указан или не найден
	ErrTableRequired = errors.New("rules: table is required")

	// ErrTableInactive столик снят с бронирования
	ErrTableInactive = errors.New("rules: table is not available for booking")
)

// FieldError ошибка валидации, привязанная к полю формы
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError создает ошибку для поля
func NewFieldError(field Field, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

// AsFieldError извлекает FieldError из цепочки ошибок
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}
