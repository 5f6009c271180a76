package domain

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// Interval полуинтервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval строит интервал из даты, времени начала и длительности
// Работает с абсолютными моментами, поэтому сидение с 22:00 на 3 часа
// корректно заканчивается в 01:00 следующих суток
func NewInterval(date time.Time, start types.TimeString, duration time.Duration) (Interval, error) {
	startAt, err := start.OnDate(date)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: startAt, End: startAt.Add(duration)}, nil
}

// EndOf возвращает время суток окончания интервала
// Результат может перейти через полночь (тогда он меньше start)
func EndOf(date time.Time, start types.TimeString, duration time.Duration) types.TimeString {
	startAt, err := start.OnDate(date)
	if err != nil {
		return ""
	}
	return types.NewTimeString(startAt.Add(duration))
}

// Overlaps пересечение полуинтервалов: startA < endB && startB < endA
// Соприкасающиеся интервалы (endA == startB) не пересекаются
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// Overlaps проверяет пересечение с другим интервалом
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// StartTime время суток начала
func (i Interval) StartTime() types.TimeString {
	return types.NewTimeString(i.Start)
}

// EndTime время суток окончания
func (i Interval) EndTime() types.TimeString {
	return types.NewTimeString(i.End)
}
