package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
)

var today = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type mockRepo struct {
	listFn func(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

func (m *mockRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return m.listFn(ctx, filter)
}

// memoryLocker ведет себя как SET NX без истечения TTL
type memoryLocker struct {
	keys map[string]time.Duration
	err  error
}

func (m *memoryLocker) TryLock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.keys[key]; ok {
		return false, nil
	}
	m.keys[key] = ttl
	return true, nil
}

type mockNotifier struct {
	failFor map[int64]bool
	sent    []int64
}

func (m *mockNotifier) Send(_ context.Context, res *domain.Reservation, kind domain.NotificationKind) error {
	if kind != domain.NotificationReminder {
		return errors.New("unexpected kind")
	}
	if m.failFor[res.ID] {
		return errors.New("broker down")
	}
	m.sent = append(m.sent, res.ID)
	return nil
}

type mockMetrics struct {
	ok, failed int
}

func (m *mockMetrics) ReminderSent(ok bool) {
	if ok {
		m.ok++
		return
	}
	m.failed++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var staff = domain.Actor{UserID: 1, Role: domain.RoleStaff}

func pendingRepo(t *testing.T, ids ...int64) *mockRepo {
	return &mockRepo{listFn: func(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
		require.NotNil(t, filter.Date)
		assert.Equal(t, "2024-06-01", filter.Date.Format(domain.DateFormat))
		assert.Equal(t, []domain.ReservationStatus{domain.StatusPending}, filter.Statuses)

		list := make([]*domain.Reservation, 0, len(ids))
		for _, id := range ids {
			list = append(list, &domain.Reservation{ID: id, Status: domain.StatusPending})
		}
		return list, nil
	}}
}

func TestExecute_SendsOncePerDay(t *testing.T) {
	locker := &memoryLocker{keys: map[string]time.Duration{}}
	notifier := &mockNotifier{}
	metrics := &mockMetrics{}
	uc := NewUseCase(pendingRepo(t, 1, 2), locker, notifier, clock.Fixed{At: today}, metrics, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Actor: staff})
	require.NoError(t, err)
	assert.Equal(t, &Response{Date: "2024-06-01", Sent: 2}, first)
	assert.Equal(t, LockTTL, locker.keys["reminders:2024-06-01"])

	second, err := uc.Execute(context.Background(), &Request{Actor: staff})
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Equal(t, 0, second.Sent)

	assert.Equal(t, []int64{1, 2}, notifier.sent)
	assert.Equal(t, 2, metrics.ok)
}

func TestExecute_DeliveryFailuresCounted(t *testing.T) {
	notifier := &mockNotifier{failFor: map[int64]bool{2: true}}
	metrics := &mockMetrics{}
	uc := NewUseCase(pendingRepo(t, 1, 2, 3), &memoryLocker{keys: map[string]time.Duration{}},
		notifier, clock.Fixed{At: today}, metrics, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Actor: staff})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, []int64{1, 3}, notifier.sent)
	assert.Equal(t, 1, metrics.failed)
}

func TestExecute_GuestRejected(t *testing.T) {
	uc := NewUseCase(&mockRepo{}, &memoryLocker{}, &mockNotifier{}, clock.Fixed{At: today}, &mockMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Actor: domain.Actor{UserID: 5, Role: domain.RoleGuest}})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_LockError(t *testing.T) {
	locker := &memoryLocker{err: errors.New("redis: connection refused")}
	notifier := &mockNotifier{}
	uc := NewUseCase(pendingRepo(t, 1), locker, notifier, clock.Fixed{At: today}, &mockMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Actor: staff})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.sent)
}

func TestExecute_ListFailureDoesNotBlockRetry(t *testing.T) {
	listErr := errors.New("db down")
	repo := pendingRepo(t, 1)
	healthy := repo.listFn
	repo.listFn = func(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
		if listErr != nil {
			return nil, listErr
		}
		return healthy(ctx, filter)
	}
	locker := &memoryLocker{keys: map[string]time.Duration{}}
	notifier := &mockNotifier{}
	uc := NewUseCase(repo, locker, notifier, clock.Fixed{At: today}, &mockMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Actor: staff})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, locker.keys)

	listErr = nil
	resp, err := uc.Execute(context.Background(), &Request{Actor: staff})
	require.NoError(t, err)
	assert.False(t, resp.Skipped)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, []int64{1}, notifier.sent)
}
