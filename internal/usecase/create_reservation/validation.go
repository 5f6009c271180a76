package create_reservation

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// validateRequest проверяет форму запроса; бизнес-правила проверяет сервис
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	if req.UserID != nil && !req.Actor.IsStaff() {
		return fmt.Errorf("%w: only staff can book on behalf of another user", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Event != nil && utf8.RuneCountInString(*req.Event) > domain.MaxEventLength {
		return fmt.Errorf("%w: event note is longer than %d characters", ErrInvalidInput, domain.MaxEventLength)
	}

	return nil
}
