package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

var (
	// ErrConflict возвращается, когда слот столика уже занят
	ErrConflict = errors.New("availability: table is already booked")

	// ErrSlotTaken слот заняли параллельным запросом (сработало ограничение БД)
	ErrSlotTaken = fmt.Errorf("%w: the slot has just been taken, please retry", ErrConflict)

	// ErrInvalidCandidate возвращается, когда интервал кандидата невозможно вычислить
	ErrInvalidCandidate = errors.New("availability: invalid candidate reservation")
)

// ConflictError пересечение с существующим бронированием
type ConflictError struct {
	ReservationID int64
	Interval      domain.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("table is already booked from %s to %s",
		e.Interval.StartTime(), e.Interval.EndTime())
}

// Unwrap позволяет сравнивать через errors.Is(err, ErrConflict)
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
