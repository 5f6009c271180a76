package domain

import (
	"sort"
	"strconv"
)

// Hall зал ресторана с сеткой столиков Width x Height
type Hall struct {
	ID          int64
	Name        string
	Description string
	Width       int
	Height      int
}

// Table столик в зале
type Table struct {
	ID        int64
	HallID    int64
	Number    string // номер, уникальный в пределах зала
	Capacity  int
	XPosition int
	YPosition int
	IsActive  bool
}

// TableSummary краткие данные столика для выбора при бронировании
type TableSummary struct {
	ID       int64
	Number   string
	Capacity int
}

// TotalCapacity общая вместимость столиков зала, вычисляется по запросу
func (h *Hall) TotalCapacity(tables []*Table) int {
	total := 0
	for _, t := range tables {
		if t.HallID == h.ID {
			total += t.Capacity
		}
	}
	return total
}

// ActiveTablesCount количество активных столиков зала
func (h *Hall) ActiveTablesCount(tables []*Table) int {
	count := 0
	for _, t := range tables {
		if t.HallID == h.ID && t.IsActive {
			count++
		}
	}
	return count
}

// ContainsPosition проверяет, что клетка лежит внутри сетки зала
func (h *Hall) ContainsPosition(x, y int) bool {
	return x >= 0 && y >= 0 && x < h.Width && y < h.Height
}

// FitsInto проверяет, что столик принадлежит залу и стоит внутри его сетки
func (t *Table) FitsInto(h *Hall) bool {
	return t.HallID == h.ID && h.ContainsPosition(t.XPosition, t.YPosition)
}

// CanSeat проверяет, что за столиком поместится partySize гостей
func (t *Table) CanSeat(partySize int) bool {
	return partySize >= 1 && partySize <= t.Capacity
}

// Summary краткое представление столика
func (t *Table) Summary() TableSummary {
	return TableSummary{ID: t.ID, Number: t.Number, Capacity: t.Capacity}
}

// SortTablesByNumber сортирует столики по номеру по возрастанию
// Числовые номера сравниваются как числа ("2" < "10"), остальные - как строки
func SortTablesByNumber(tables []*Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		return lessTableNumber(tables[i].Number, tables[j].Number)
	})
}

func lessTableNumber(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
