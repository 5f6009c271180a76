package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	reservationRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TableReservation/internal/service/availability"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	"github.com/m04kA/SMC-TableReservation/pkg/ptr"
)

var june1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

type mockService struct {
	editFn func(ctx context.Context, req *models.EditRequest) (*domain.Reservation, *domain.Reservation, error)
}

func (m *mockService) PrepareEdit(ctx context.Context, req *models.EditRequest) (*domain.Reservation, *domain.Reservation, error) {
	return m.editFn(ctx, req)
}

type mockRepo struct {
	updateFn func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	calls    int
}

func (m *mockRepo) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	m.calls++
	return m.updateFn(ctx, res)
}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockMetrics struct {
	conflicts []string
}

func (m *mockMetrics) ReservationConflict(origin string) {
	m.conflicts = append(m.conflicts, origin)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existing() *domain.Reservation {
	return &domain.Reservation{
		ID:              7,
		TableID:         1,
		UserID:          10,
		Date:            june1,
		StartTime:       "19:00",
		DurationMinutes: 180,
		GuestsCount:     2,
		Status:          domain.StatusConfirmed,
		Source:          domain.SourceGuest,
	}
}

func TestExecute_StaffExtension(t *testing.T) {
	var gotPatch *models.EditRequest
	svc := &mockService{editFn: func(_ context.Context, req *models.EditRequest) (*domain.Reservation, *domain.Reservation, error) {
		gotPatch = req
		before := existing()
		after := before.Clone()
		after.DurationMinutes = *req.Patch.DurationMinutes
		after.ExtendedByAdmin = true
		return before, after, nil
	}}
	repo := &mockRepo{updateFn: func(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
		return res, nil
	}}
	uc := NewUseCase(svc, repo, passTx{}, &mockMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:           domain.Actor{UserID: 99, Role: domain.RoleStaff},
		ReservationID:   7,
		DurationMinutes: ptr.Ptr(300),
	})
	require.NoError(t, err)

	assert.Equal(t, 300, *gotPatch.Patch.DurationMinutes)
	assert.True(t, resp.ExtendedByAdmin)
	assert.Equal(t, "00:00", resp.EndTime)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		editErr     error
		updateErr   error
		wantIs      error
		wantField   rules.Field
		wantMetrics []string
	}{
		{
			name:      "field error passes through",
			editErr:   rules.NewFieldError(rules.FieldStartTime, rules.ErrOutsideWorkingHours),
			wantIs:    rules.ErrOutsideWorkingHours,
			wantField: rules.FieldStartTime,
		},
		{
			name:        "precheck conflict",
			editErr:     rules.NewFieldError(rules.FieldTable, &availability.ConflictError{ReservationID: 3}),
			wantIs:      availability.ErrConflict,
			wantField:   rules.FieldTable,
			wantMetrics: []string{"precheck"},
		},
		{
			name:        "unique violation",
			updateErr:   reservationRepo.ErrSlotTaken,
			wantIs:      availability.ErrSlotTaken,
			wantField:   rules.FieldTable,
			wantMetrics: []string{"constraint"},
		},
		{
			name:        "serialization failure on locked read",
			editErr:     fmt.Errorf("%w: GetByID: %v", reservationRepo.ErrSlotTaken, &pq.Error{Code: "40001"}),
			wantIs:      availability.ErrSlotTaken,
			wantField:   rules.FieldTable,
			wantMetrics: []string{"constraint"},
		},
		{
			name:    "access denied",
			editErr: reservations.ErrAccessDenied,
			wantIs:  reservations.ErrAccessDenied,
		},
		{
			name:      "deleted between read and write",
			updateErr: reservationRepo.ErrReservationNotFound,
			wantIs:    reservations.ErrReservationNotFound,
		},
		{
			name:      "unexpected",
			updateErr: errors.New("disk full"),
			wantIs:    ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{editFn: func(context.Context, *models.EditRequest) (*domain.Reservation, *domain.Reservation, error) {
				if tt.editErr != nil {
					return nil, nil, tt.editErr
				}
				return existing(), existing(), nil
			}}
			repo := &mockRepo{updateFn: func(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
				return nil, tt.updateErr
			}}
			metrics := &mockMetrics{}
			uc := NewUseCase(svc, repo, passTx{}, metrics, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				Actor:         domain.Actor{UserID: 10, Role: domain.RoleGuest},
				ReservationID: 7,
				GuestsCount:   ptr.Ptr(3),
			})

			assert.ErrorIs(t, err, tt.wantIs)
			if tt.wantField != "" {
				fieldErr, ok := rules.AsFieldError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantField, fieldErr.Field)
			}
			assert.Equal(t, tt.wantMetrics, metrics.conflicts)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockService{}, &mockRepo{}, passTx{}, &mockMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Actor: domain.Actor{UserID: 10}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
