package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	hallRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/hall"
	reservationRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
)

// Service ядро бронирования: проверка и подготовка броней, переходы статусов,
// пакетное завершение прошедших броней.
// Сервис ничего не отправляет и не открывает транзакций: этим занимаются use case.
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	validator       *rules.Validator
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	validator *rules.Validator,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		validator:       validator,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// ValidateAndPrepare собирает новое бронирование из черновика и проверяет его.
// Возвращает готовую к сохранению бронь или *rules.FieldError.
// Гость не может задать длительность, отличную от стандартной.
func (s *Service) ValidateAndPrepare(ctx context.Context, req *models.PrepareRequest) (*domain.Reservation, error) {
	if req.DurationMinutes != nil && *req.DurationMinutes != domain.DefaultDurationMinutes && !req.Actor.IsStaff() {
		return nil, rules.NewFieldError(rules.FieldDuration, lifecycle.ErrDurationLocked)
	}

	reservation := &domain.Reservation{
		TableID:         req.TableID,
		UserID:          req.Actor.UserID,
		Date:            clock.DateOf(req.Date),
		StartTime:       req.StartTime,
		DurationMinutes: domain.DefaultDurationMinutes,
		GuestsCount:     req.GuestsCount,
		Source:          domain.SourceGuest,
		Event:           normalizeEvent(req.Event),
	}
	if req.DurationMinutes != nil {
		reservation.DurationMinutes = *req.DurationMinutes
	}

	if req.Actor.IsStaff() {
		reservation.Source = domain.SourceAdmin
		staffID := req.Actor.UserID
		reservation.StaffUserID = &staffID
		if req.OnBehalfOf != nil {
			reservation.UserID = *req.OnBehalfOf
		}
	}

	reservation.Status = lifecycle.InitialStatus(reservation.Date, s.timeProvider.Today())

	table, err := s.loadTable(ctx, reservation.TableID)
	if err != nil {
		return nil, err
	}

	candidate := rules.Candidate{Reservation: reservation, Table: table}
	if err := s.validator.Validate(candidate, s.existingLoader(ctx, reservation)); err != nil {
		return nil, s.classify("ValidateAndPrepare", err)
	}

	return reservation, nil
}

// PrepareEdit применяет правку к существующему бронированию и проверяет результат.
// Бронь сверяется с занятостью столика без учета самой себя.
// Неактивный столик допустим, если бронь на нем уже стояла.
func (s *Service) PrepareEdit(ctx context.Context, req *models.EditRequest) (existing, updated *domain.Reservation, err error) {
	if req.Patch.IsEmpty() {
		return nil, nil, ErrNothingToUpdate
	}

	existing, err = s.getAccessible(ctx, "PrepareEdit", req.Actor, req.ReservationID)
	if err != nil {
		return nil, nil, err
	}

	updated, err = lifecycle.ApplyEdit(existing, req.Patch, req.Actor)
	if err != nil {
		s.logger.Warn("PrepareEdit: edit of reservation id=%d rejected: %v", req.ReservationID, err)
		if errors.Is(err, lifecycle.ErrTerminalState) {
			return nil, nil, fmt.Errorf("%w: %w", ErrTransitionRejected, err)
		}
		return nil, nil, err
	}

	table, err := s.loadTable(ctx, updated.TableID)
	if err != nil {
		return nil, nil, err
	}

	candidate := rules.Candidate{
		Reservation:        updated,
		Table:              table,
		AllowInactiveTable: updated.TableID == existing.TableID,
	}
	if err := s.validator.Validate(candidate, s.existingLoader(ctx, updated)); err != nil {
		return nil, nil, s.classify("PrepareEdit", err)
	}

	return existing, updated, nil
}

// TransitionStatus применяет событие жизненного цикла и сохраняет новый статус.
// Подтверждение повторно проверяет занятость столика: подтвержденные брони
// не должны пересекаться. Отмена разрешена всегда и ничего не перепроверяет.
// Завершать бронь вручную может только сотрудник.
func (s *Service) TransitionStatus(ctx context.Context, actor domain.Actor, id int64, event lifecycle.Event) (*domain.Reservation, error) {
	s.logger.Info("TransitionStatus: reservation id=%d, event=%s, user=%d", id, event, actor.UserID)

	reservation, err := s.getAccessible(ctx, "TransitionStatus", actor, id)
	if err != nil {
		return nil, err
	}

	if event == lifecycle.EventComplete && !actor.IsStaff() {
		s.logger.Warn("TransitionStatus: user=%d is not allowed to complete reservation id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	newStatus, err := lifecycle.Transition(reservation, event, actor, s.timeProvider.Today())
	if err != nil {
		s.logger.Warn("TransitionStatus: reservation id=%d, event=%s rejected: %v", id, event, err)
		return nil, fmt.Errorf("%w: %w", ErrTransitionRejected, err)
	}

	if newStatus == domain.StatusConfirmed {
		candidate := reservation.Clone()
		candidate.Status = newStatus
		if err := s.validator.ValidateAvailability(candidate, s.existingLoader(ctx, candidate)); err != nil {
			return nil, s.classify("TransitionStatus", err)
		}
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		// Гонку подтверждений ловит уникальный индекс, наверх уходит ErrSlotTaken
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, err
		}
		s.logger.Error("TransitionStatus: failed to update status of reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
	}

	s.metrics.StatusTransition(string(newStatus), 1)
	s.logger.Info("TransitionStatus: reservation id=%d moved %s -> %s", id, reservation.Status, newStatus)

	reservation.Status = newStatus
	return reservation, nil
}

// RunCompletionSweep переводит подтвержденные брони с датой раньше asOf в completed.
// Идемпотентна: повторный запуск ничего не меняет.
func (s *Service) RunCompletionSweep(ctx context.Context, asOf time.Time) (int64, error) {
	filter := domain.StatusTransitionFilter{
		FromStatus: domain.StatusConfirmed,
		DateBefore: clock.DateOf(asOf),
	}

	count, err := s.reservationRepo.BulkTransition(ctx, filter, domain.StatusCompleted)
	if err != nil {
		s.logger.Error("RunCompletionSweep: failed to complete reservations before %s: %v",
			filter.DateBefore.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: RunCompletionSweep - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.metrics.StatusTransition(string(domain.StatusCompleted), count)
		s.logger.Info("RunCompletionSweep: %d reservations completed before %s",
			count, filter.DateBefore.Format(domain.DateFormat))
	}

	return count, nil
}

// GetByID получает бронирование; гость видит только свои брони
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.getAccessible(ctx, "GetByID", actor, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// List получает список бронирований без побочных эффектов.
// Завершение прошедших броней вызывающий код запускает отдельно (RunCompletionSweep).
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	for _, status := range req.Statuses {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
	}

	list, err := s.reservationRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// Вспомогательные методы

// getAccessible загружает бронь и проверяет права: владелец или сотрудник
func (s *Service) getAccessible(ctx context.Context, op string, actor domain.Actor, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			s.logger.Warn("%s: reservation id=%d is locked by a concurrent request: %v", op, id, err)
			return nil, err
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !actor.CanAccess(reservation) {
		s.logger.Warn("%s: access denied for user=%d to reservation id=%d", op, actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}

// loadTable возвращает nil без ошибки, если столик не найден:
// это ошибка валидации поля table, а не системная
func (s *Service) loadTable(ctx context.Context, tableID int64) (*domain.Table, error) {
	if tableID <= 0 {
		return nil, nil
	}

	table, err := s.tableRepo.GetTable(ctx, tableID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrTableNotFound) {
			return nil, nil
		}
		s.logger.Error("loadTable: failed to get table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	return table, nil
}

// existingLoader загружает брони столика на дату, удерживающие слот
func (s *Service) existingLoader(ctx context.Context, r *domain.Reservation) rules.ExistingLoader {
	return func() ([]*domain.Reservation, error) {
		existing, err := s.reservationRepo.FindByTableAndDate(ctx, r.TableID, r.Date, domain.BlockingStatuses)
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load reservations of table id=%d: %v", ErrInternal, r.TableID, err)
		}
		return existing, nil
	}
}

// classify ошибки валидации и конфликт сериализации возвращаются как есть,
// остальные логируются как внутренние
func (s *Service) classify(op string, err error) error {
	if fieldErr, ok := rules.AsFieldError(err); ok {
		s.logger.Warn("%s: validation failed on %s: %v", op, fieldErr.Field, fieldErr.Err)
		return err
	}
	if errors.Is(err, reservationRepo.ErrSlotTaken) {
		s.logger.Warn("%s: concurrent request holds the slot: %v", op, err)
		return err
	}
	s.logger.Error("%s: %v", op, err)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func normalizeEvent(event *string) *string {
	if event == nil || *event == "" {
		return nil
	}
	return event
}
