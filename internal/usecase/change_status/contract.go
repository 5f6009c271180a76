package change_status

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
)

// ReservationService ядро жизненного цикла бронирований
type ReservationService interface {
	TransitionStatus(ctx context.Context, actor domain.Actor, id int64, event lifecycle.Event) (*domain.Reservation, error)
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
	ReservationConflict(origin string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
