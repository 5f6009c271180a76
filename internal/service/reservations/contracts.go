package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindByTableAndDate(ctx context.Context, tableID int64, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	BulkTransition(ctx context.Context, filter domain.StatusTransitionFilter, to domain.ReservationStatus) (int64, error)
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	GetTable(ctx context.Context, id int64) (*domain.Table, error)
}

// TimeProvider интерфейс для получения текущей даты (для тестирования)
type TimeProvider interface {
	Now() time.Time
	Today() time.Time
}

// Metrics счетчики переходов статусов
type Metrics interface {
	StatusTransition(to string, count int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
