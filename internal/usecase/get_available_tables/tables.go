package get_available_tables

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/availability"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// filterAvailable оставляет столики, на которых условная бронь
// длительностью по умолчанию не пересекается с занятыми слотами.
// Результат отсортирован по номеру столика.
func filterAvailable(
	tables []*domain.Table,
	byTable map[int64][]*domain.Reservation,
	date time.Time,
	start types.TimeString,
) []domain.TableSummary {
	sorted := make([]*domain.Table, len(tables))
	copy(sorted, tables)
	domain.SortTablesByNumber(sorted)

	result := make([]domain.TableSummary, 0, len(sorted))
	for _, table := range sorted {
		if !table.IsActive {
			continue
		}

		probe := &domain.Reservation{
			TableID:         table.ID,
			Date:            date,
			StartTime:       start,
			DurationMinutes: domain.DefaultDurationMinutes,
			Status:          domain.StatusPending,
		}
		if err := availability.Check(probe, byTable[table.ID]); err != nil {
			continue
		}

		result = append(result, table.Summary())
	}

	return result
}

func groupByTable(reservations []*domain.Reservation) map[int64][]*domain.Reservation {
	result := make(map[int64][]*domain.Reservation)
	for _, r := range reservations {
		result[r.TableID] = append(result[r.TableID], r)
	}
	return result
}
