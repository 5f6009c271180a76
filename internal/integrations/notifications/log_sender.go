package notifications

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// LogSender пишет уведомления в лог; используется, когда RabbitMQ выключен
type LogSender struct {
	log Logger
}

// NewLogSender создает LogSender
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send никогда не возвращает ошибку
func (s *LogSender) Send(_ context.Context, res *domain.Reservation, kind domain.NotificationKind) error {
	s.log.Info("Notification %s: reservation id=%d, user=%d, table=%d, %s %s",
		RoutingKey(kind), res.ID, res.UserID, res.TableID, res.Date.Format(domain.DateFormat), res.StartTime)
	return nil
}
