package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	updateReservation "github.com/m04kA/SMC-TableReservation/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime = "некорректный формат времени, ожидается HH:MM"
)

// UpdateReservationRequest HTTP request model; отсутствующее поле не меняется
type UpdateReservationRequest struct {
	TableID         *int64  `json:"tableId,omitempty"`
	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	GuestsCount     *int    `json:"guestsCount,omitempty"`
	Event           *string `json:"event,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(actor domain.Actor, reservationID int64) (*updateReservation.Request, *handlers.ErrorResponse) {
	req := &updateReservation.Request{
		Actor:           actor,
		ReservationID:   reservationID,
		TableID:         r.TableID,
		DurationMinutes: r.DurationMinutes,
		GuestsCount:     r.GuestsCount,
		Event:           r.Event,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, &handlers.ErrorResponse{Error: msgInvalidDate, Field: string(rules.FieldDate)}
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, &handlers.ErrorResponse{Error: msgInvalidTime, Field: string(rules.FieldStartTime)}
		}
		req.StartTime = &start
	}

	return req, nil
}
