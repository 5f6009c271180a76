package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
)

// ReservationService ядро проверки бронирований
type ReservationService interface {
	ValidateAndPrepare(ctx context.Context, req *models.PrepareRequest) (*domain.Reservation, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationSender отправка уведомлений по бронированию
type NotificationSender interface {
	Send(ctx context.Context, res *domain.Reservation, kind domain.NotificationKind) error
}

// Metrics доменные счетчики
type Metrics interface {
	ReservationCreated(source, status string)
	ReservationConflict(origin string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
