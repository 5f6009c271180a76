package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor           domain.Actor     // кто оформляет
	UserID          *int64           // гость, за которого оформляет сотрудник
	TableID         int64            // ID столика
	Date            time.Time        // Дата (без времени)
	StartTime       types.TimeString // Время начала, "19:00"
	DurationMinutes *int             // Только для сотрудника
	GuestsCount     int              // Количество гостей
	Event           *string          // Повод (опционально)
}

// ToPrepareRequest конвертирует запрос в модель сервиса
func (r *Request) ToPrepareRequest() *models.PrepareRequest {
	return &models.PrepareRequest{
		Actor:           r.Actor,
		OnBehalfOf:      r.UserID,
		TableID:         r.TableID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		GuestsCount:     r.GuestsCount,
		Event:           r.Event,
	}
}
