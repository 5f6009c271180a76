package get_available_tables

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// HallRepository интерфейс репозитория залов и столиков
type HallRepository interface {
	GetHall(ctx context.Context, id int64) (*domain.Hall, error)
	TablesFilteredByCapacity(ctx context.Context, hallID int64, minCapacity int) ([]*domain.Table, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	FindByTablesAndDate(ctx context.Context, tableIDs []int64, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
