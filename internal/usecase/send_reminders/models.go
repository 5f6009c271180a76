package send_reminders

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// LockTTL время жизни блокировки рассылки за день
const LockTTL = 24 * time.Hour

// Request модель запроса на рассылку напоминаний
type Request struct {
	Actor domain.Actor
}

// Response итог рассылки
type Response struct {
	Date    string `json:"date"`
	Skipped bool   `json:"skipped"` // за этот день рассылка уже выполнялась
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
}

// lockKey ключ блокировки рассылки на дату
func lockKey(date time.Time) string {
	return "reminders:" + date.Format(domain.DateFormat)
}
