package send_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Locker распределенная блокировка запуска рассылки
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// NotificationSender отправка уведомлений по бронированию
type NotificationSender interface {
	Send(ctx context.Context, res *domain.Reservation, kind domain.NotificationKind) error
}

// TimeProvider источник текущей даты ресторана
type TimeProvider interface {
	Today() time.Time
}

// Metrics доменные счетчики
type Metrics interface {
	ReminderSent(ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
