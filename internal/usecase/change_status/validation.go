package change_status

import (
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	switch req.Event {
	case lifecycle.EventConfirm, lifecycle.EventCancel, lifecycle.EventComplete:
	default:
		return fmt.Errorf("%w: unknown event %q", ErrInvalidInput, req.Event)
	}

	return nil
}
