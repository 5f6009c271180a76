package notifications

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// Message сообщение о бронировании для сервиса уведомлений
type Message struct {
	Kind          string  `json:"kind"`
	ReservationID int64   `json:"reservationId"`
	UserID        int64   `json:"userId"`
	TableID       int64   `json:"tableId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	GuestsCount   int     `json:"guestsCount"`
	Status        string  `json:"status"`
	Event         *string `json:"event,omitempty"`
	OccurredAt    string  `json:"occurredAt"`
}

// NewMessage собирает сообщение из бронирования
func NewMessage(res *domain.Reservation, kind domain.NotificationKind, at time.Time) Message {
	return Message{
		Kind:          string(kind),
		ReservationID: res.ID,
		UserID:        res.UserID,
		TableID:       res.TableID,
		Date:          res.Date.Format(domain.DateFormat),
		StartTime:     res.StartTime.String(),
		EndTime:       res.EndTime().String(),
		GuestsCount:   res.GuestsCount,
		Status:        string(res.Status),
		Event:         res.Event,
		OccurredAt:    at.UTC().Format(time.RFC3339),
	}
}

// RoutingKey ключ маршрутизации для типа уведомления
func RoutingKey(kind domain.NotificationKind) string {
	return "reservation." + string(kind)
}
