package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	reservationRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TableReservation/internal/service/availability"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	"github.com/m04kA/SMC-TableReservation/pkg/pgerrors"
)

// UseCase use case для изменения бронирования гостем или сотрудником
type UseCase struct {
	service         ReservationService
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	service ReservationService,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		service:         service,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute применяет правку. Бронь блокируется на время транзакции (FOR UPDATE),
// проверяется заново без учета самой себя и сохраняется целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("UpdateReservation: reservation=%d, user=%d, role=%s",
		req.ReservationID, req.Actor.UserID, req.Actor.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var saved *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, updated, err := uc.service.PrepareEdit(txCtx, req.ToEditRequest())
		if err != nil {
			return err
		}

		if updated.ExtendedByAdmin && !existing.ExtendedByAdmin {
			uc.logger.Info("UpdateReservation: reservation id=%d extended by staff user=%d: %d -> %d min",
				existing.ID, req.Actor.UserID, existing.DurationMinutes, updated.DurationMinutes)
		}

		saved, err = uc.reservationRepo.Update(txCtx, updated)
		return err
	})
	if err != nil {
		return nil, uc.mapError(req, err)
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", saved.ID)
	return models.FromDomainReservation(saved), nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrSlotTaken), pgerrors.IsSerializationFailure(err):
		uc.metrics.ReservationConflict("constraint")
		uc.logger.Warn("UpdateReservation: slot taken by a concurrent request: %v", err)
		return rules.NewFieldError(rules.FieldTable, availability.ErrSlotTaken)

	case errors.Is(err, availability.ErrConflict):
		uc.metrics.ReservationConflict("precheck")
		return err

	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		return reservations.ErrReservationNotFound
	}

	if _, ok := rules.AsFieldError(err); ok {
		return err
	}

	// Типизированные ошибки сервиса (нет доступа, терминальный статус и т.п.)
	if errors.Is(err, reservations.ErrReservationNotFound) ||
		errors.Is(err, reservations.ErrAccessDenied) ||
		errors.Is(err, reservations.ErrTransitionRejected) ||
		errors.Is(err, reservations.ErrNothingToUpdate) ||
		errors.Is(err, reservations.ErrInternal) {
		return err
	}

	uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
