package create_reservation

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

// UseCase use case для создания бронирования
type UseCase struct {
	service         ReservationService
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        NotificationSender
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	service ReservationService,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier NotificationSender,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		service:         service,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка и вставка идут в сериализуемой транзакции; гонку за одинаковый слот
// окончательно решает уникальный индекс (table_id, date, start_time)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CreateReservation: user=%d, role=%s, table=%d, date=%s, time=%s, guests=%d",
		req.Actor.UserID, req.Actor.Role, req.TableID, req.Date.Format(domain.DateFormat), req.StartTime, req.GuestsCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Reservation

	// 2. Проверка правил и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.service.ValidateAndPrepare(txCtx, req.ToPrepareRequest())
		if err != nil {
			return err
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		return err
	})
	if err != nil {
		return nil, uc.mapError(err)
	}

	uc.metrics.ReservationCreated(string(created.Source), string(created.Status))
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, status=%s",
		created.ID, created.Status)

	// 3. Уведомление после фиксации транзакции; ошибка доставки бронь не отменяет
	if err := uc.notifier.Send(ctx, created, domain.NotificationCreated); err != nil {
		uc.logger.Error("CreateReservation: failed to send notification for reservation id=%d: %v", created.ID, err)
	}

	return models.FromDomainReservation(created), nil
}

// mapError переводит ошибки в типизированные: гонка за слот становится
// тем же конфликтом по полю table, что и отказ предварительной проверки
func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrSlotTaken), pgerrors.IsSerializationFailure(err):
		uc.metrics.ReservationConflict("constraint")
		uc.logger.Warn("CreateReservation: slot taken by a concurrent request: %v", err)
		return rules.NewFieldError(rules.FieldTable, availability.ErrSlotTaken)

	case errors.Is(err, availability.ErrConflict):
		uc.metrics.ReservationConflict("precheck")
		return err
	}

	if _, ok := rules.AsFieldError(err); ok {
		return err
	}

	if errors.Is(err, reservations.ErrInternal) {
		return err
	}

	uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
