package change_status

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

// UseCase use case для подтверждения, отмены и завершения бронирования
type UseCase struct {
	service   ReservationService
	txManager TransactionManager
	notifier  NotificationSender
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	service ReservationService,
	txManager TransactionManager,
	notifier NotificationSender,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		service:   service,
		txManager: txManager,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute применяет событие к бронированию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("ChangeStatus: reservation=%d, event=%s, user=%d, role=%s",
		req.ReservationID, req.Event, req.Actor.UserID, req.Actor.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChangeStatus: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = uc.service.TransitionStatus(txCtx, req.Actor, req.ReservationID, req.Event)
		return err
	})
	if err != nil {
		return nil, uc.mapError(req, err)
	}

	if kind, ok := notificationFor(updated.Status); ok {
		if err := uc.notifier.Send(ctx, updated, kind); err != nil {
			uc.logger.Error("ChangeStatus: failed to send %s notification for reservation id=%d: %v",
				kind, updated.ID, err)
		}
	}

	return models.FromDomainReservation(updated), nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrSlotTaken), pgerrors.IsSerializationFailure(err):
		uc.metrics.ReservationConflict("constraint")
		uc.logger.Warn("ChangeStatus: slot taken by a concurrent confirmation: %v", err)
		return rules.NewFieldError(rules.FieldTable, availability.ErrSlotTaken)

	case errors.Is(err, availability.ErrConflict):
		uc.metrics.ReservationConflict("precheck")
		return err
	}

	if _, ok := rules.AsFieldError(err); ok {
		return err
	}

	if errors.Is(err, reservations.ErrReservationNotFound) ||
		errors.Is(err, reservations.ErrAccessDenied) ||
		errors.Is(err, reservations.ErrTransitionRejected) ||
		errors.Is(err, reservations.ErrInternal) {
		return err
	}

	uc.logger.Error("ChangeStatus: failed to apply %s to reservation id=%d: %v", req.Event, req.ReservationID, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
