package availability

import (
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// Check проверяет, что кандидат не пересекается с существующими бронированиями
// того же столика на ту же дату. Возвращает nil, если слот свободен,
// и *ConflictError с интервалом первого найденного пересечения.
//
// existing выбирает вызывающий код; учитываются только бронирования,
// удерживающие слот (confirmed, completed). Само бронирование (при
// редактировании) исключается по ID.
//
// Неполный кандидат (нет столика, даты или времени) и отмененный кандидат
// считаются допустимыми: первый еще не проверяем, второй ни с чем не конфликтует.
func Check(candidate *domain.Reservation, existing []*domain.Reservation) error {
	if candidate == nil || candidate.TableID == 0 || candidate.Date.IsZero() || candidate.StartTime.IsZero() {
		return nil
	}

	if candidate.Status == domain.StatusCanceled {
		return nil
	}

	wanted, err := candidate.Interval()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCandidate, err)
	}

	for _, other := range existing {
		if !competes(candidate, other) {
			continue
		}

		occupied, err := other.Interval()
		if err != nil {
			// Если не можем вычислить интервал существующей брони, пропускаем
			continue
		}

		if wanted.Overlaps(occupied) {
			return &ConflictError{
				ReservationID: other.ID,
				Interval:      occupied,
			}
		}
	}

	return nil
}

// competes возвращает true, если other претендует на тот же слот, что и candidate
func competes(candidate, other *domain.Reservation) bool {
	if other == nil || !other.HoldsSlot() {
		return false
	}
	if !candidate.IsNew() && other.ID == candidate.ID {
		return false
	}
	return other.TableID == candidate.TableID && other.Date.Equal(candidate.Date)
}
