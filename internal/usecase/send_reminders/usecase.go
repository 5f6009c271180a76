package send_reminders

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// UseCase ежедневная рассылка напоминаний о неподтвержденных бронях на сегодня
type UseCase struct {
	reservationRepo ReservationRepository
	locker          Locker
	notifier        NotificationSender
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	locker Locker,
	notifier NotificationSender,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		locker:          locker,
		notifier:        notifier,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute отправляет напоминания владельцам ожидающих броней на сегодня.
// Повторный запуск в тот же день ничего не отправляет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Actor.IsStaff() {
		uc.logger.Warn("SendReminders: user=%d is not staff", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	today := uc.timeProvider.Today()
	resp := &Response{Date: today.Format(domain.DateFormat)}

	// Блокировку нельзя брать до успешного чтения списка
	pending, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		Date:     &today,
		Statuses: []domain.ReservationStatus{domain.StatusPending},
	})
	if err != nil {
		uc.logger.Error("SendReminders: failed to list pending reservations for %s: %v", resp.Date, err)
		return nil, fmt.Errorf("%w: list reservations: %v", ErrInternal, err)
	}

	acquired, err := uc.locker.TryLock(ctx, lockKey(today), LockTTL)
	if err != nil {
		uc.logger.Error("SendReminders: failed to acquire lock for %s: %v", resp.Date, err)
		return nil, fmt.Errorf("%w: acquire lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Info("SendReminders: reminders for %s already sent, skipping", resp.Date)
		resp.Skipped = true
		return resp, nil
	}

	for _, reservation := range pending {
		if err := uc.notifier.Send(ctx, reservation, domain.NotificationReminder); err != nil {
			uc.logger.Error("SendReminders: failed to remind about reservation id=%d: %v", reservation.ID, err)
			uc.metrics.ReminderSent(false)
			resp.Failed++
			continue
		}
		uc.metrics.ReminderSent(true)
		resp.Sent++
	}

	uc.logger.Info("SendReminders: %s done, sent=%d, failed=%d", resp.Date, resp.Sent, resp.Failed)
	return resp, nil
}
