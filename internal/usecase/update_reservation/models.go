package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// Request модель запроса на изменение бронирования; nil - поле не меняется
type Request struct {
	Actor           domain.Actor
	ReservationID   int64
	TableID         *int64
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int // гостю недоступно
	GuestsCount     *int
	Event           *string // пустая строка очищает повод
}

// ToEditRequest конвертирует запрос в модель сервиса
func (r *Request) ToEditRequest() *models.EditRequest {
	return &models.EditRequest{
		Actor:         r.Actor,
		ReservationID: r.ReservationID,
		Patch: lifecycle.Patch{
			TableID:         r.TableID,
			Date:            r.Date,
			StartTime:       r.StartTime,
			DurationMinutes: r.DurationMinutes,
			GuestsCount:     r.GuestsCount,
			Event:           r.Event,
		},
	}
}
