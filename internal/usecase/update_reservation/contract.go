package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
)

// ReservationService ядро проверки бронирований
type ReservationService interface {
	PrepareEdit(ctx context.Context, req *models.EditRequest) (existing, updated *domain.Reservation, err error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	ReservationConflict(origin string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
