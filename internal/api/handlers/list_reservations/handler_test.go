package list_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
)

var now = time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)

type mockService struct {
	calls    []string
	sweepAt  time.Time
	sweepErr error
	listReq  *models.ListRequest
	listErr  error
}

func (m *mockService) RunCompletionSweep(_ context.Context, asOf time.Time) (int64, error) {
	m.calls = append(m.calls, "sweep")
	m.sweepAt = asOf
	return 1, m.sweepErr
}

func (m *mockService) List(_ context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	m.calls = append(m.calls, "list")
	m.listReq = req
	if m.listErr != nil {
		return nil, m.listErr
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{}, Total: 0}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc *mockService, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 7, Role: domain.RoleGuest}))
	rec := httptest.NewRecorder()
	NewHandler(svc, clock.Fixed{At: now}, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_SweepsThenLists(t *testing.T) {
	svc := &mockService{}
	rec := get(svc, "/reservations?date=2024-06-01&status=confirmed,completed&tableId=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"sweep", "list"}, svc.calls)
	assert.Equal(t, now, svc.sweepAt)

	assert.Equal(t, []domain.ReservationStatus{domain.StatusConfirmed, domain.StatusCompleted}, svc.listReq.Statuses)
	assert.Equal(t, int64(3), *svc.listReq.TableID)
	assert.Equal(t, "2024-06-01", svc.listReq.Date.Format(domain.DateFormat))
	assert.Equal(t, int64(7), svc.listReq.Actor.UserID)
}

func TestHandle_SweepFailureStillLists(t *testing.T) {
	svc := &mockService{sweepErr: errors.New("db down")}
	rec := get(svc, "/reservations")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"sweep", "list"}, svc.calls)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		listErr    error
		wantStatus int
	}{
		{"bad date", "/reservations?date=yesterday", nil, http.StatusBadRequest},
		{"bad table", "/reservations?tableId=x", nil, http.StatusBadRequest},
		{"unknown status", "/reservations?status=lost", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/reservations", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&mockService{listErr: tt.listErr}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
