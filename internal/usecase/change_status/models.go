package change_status

import (
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
)

// Request модель запроса на смену статуса
type Request struct {
	Actor         domain.Actor
	ReservationID int64
	Event         lifecycle.Event
}

// notificationFor тип уведомления для нового статуса; false - уведомлять не нужно
func notificationFor(status domain.ReservationStatus) (domain.NotificationKind, bool) {
	switch status {
	case domain.StatusConfirmed:
		return domain.NotificationConfirmed, true
	case domain.StatusCanceled:
		return domain.NotificationCanceled, true
	}
	return "", false
}
