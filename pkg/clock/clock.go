package clock

import "time"

// Clock реальный провайдер времени в часовом поясе ресторана
type Clock struct {
	location *time.Location
}

// New создает Clock для указанного часового пояса (nil = UTC)
func New(location *time.Location) *Clock {
	if location == nil {
		location = time.UTC
	}
	return &Clock{location: location}
}

// Now возвращает текущее время в часовом поясе ресторана
func (c *Clock) Now() time.Time {
	return time.Now().In(c.location)
}

// Today возвращает текущую календарную дату ресторана
func (c *Clock) Today() time.Time {
	return DateOf(c.Now())
}

// DateOf приводит момент времени к календарной дате: полночь UTC того же дня
// Все даты бронирований в системе хранятся в таком виде
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixed провайдер с фиксированным временем для тестов
type Fixed struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (f Fixed) Now() time.Time {
	return f.At
}

// Today возвращает календарную дату зафиксированного времени
func (f Fixed) Today() time.Time {
	return DateOf(f.At)
}
