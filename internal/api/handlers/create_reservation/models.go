package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	createReservation "github.com/m04kA/SMC-TableReservation/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime = "некорректный формат времени, ожидается HH:MM"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	UserID          *int64  `json:"userId,omitempty"` // только для сотрудника
	TableID         int64   `json:"tableId"`
	Date            string  `json:"date"`      // "2024-06-01"
	StartTime       string  `json:"startTime"` // "19:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	GuestsCount     int     `json:"guestsCount"`
	Event           *string `json:"event,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустые дата и время не ошибка разбора: их отсутствие проверяют правила брони.
func (r *CreateReservationRequest) ToUseCaseRequest(actor domain.Actor) (*createReservation.Request, *handlers.ErrorResponse) {
	req := &createReservation.Request{
		Actor:           actor,
		UserID:          r.UserID,
		TableID:         r.TableID,
		DurationMinutes: r.DurationMinutes,
		GuestsCount:     r.GuestsCount,
		Event:           r.Event,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, &handlers.ErrorResponse{Error: msgInvalidDate, Field: string(rules.FieldDate)}
		}
		req.Date = date
	}

	if r.StartTime != "" {
		start, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, &handlers.ErrorResponse{Error: msgInvalidTime, Field: string(rules.FieldStartTime)}
		}
		req.StartTime = start
	}

	return req, nil
}
