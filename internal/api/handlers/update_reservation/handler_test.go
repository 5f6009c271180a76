package update_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	updateReservation "github.com/m04kA/SMC-TableReservation/internal/usecase/update_reservation"
)

type mockUseCase struct {
	got *updateReservation.Request
	err error
}

func (m *mockUseCase) Execute(_ context.Context, req *updateReservation.Request) (*models.ReservationResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.ReservationResponse{ID: req.ReservationID}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func put(uc *mockUseCase, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{reservationId}", NewHandler(uc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 3, Role: domain.RoleStaff}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PartialPatch(t *testing.T) {
	uc := &mockUseCase{}
	rec := put(uc, "/reservations/12", `{"date": "2024-06-05", "durationMinutes": 240}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), uc.got.ReservationID)
	require.NotNil(t, uc.got.Date)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), *uc.got.Date)
	assert.Equal(t, 240, *uc.got.DurationMinutes)
	assert.Nil(t, uc.got.StartTime)
	assert.Nil(t, uc.got.TableID)
	assert.Nil(t, uc.got.GuestsCount)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		ucErr      error
		wantStatus int
	}{
		{"bad id", "/reservations/abc", `{}`, nil, http.StatusBadRequest},
		{"bad time", "/reservations/1", `{"startTime": "noon"}`, nil, http.StatusBadRequest},
		{"duration locked", "/reservations/1", `{"durationMinutes": 60}`,
			rules.NewFieldError(rules.FieldDuration, lifecycle.ErrDurationLocked), http.StatusBadRequest},
		{"not found", "/reservations/1", `{"guestsCount": 2}`, reservations.ErrReservationNotFound, http.StatusNotFound},
		{"foreign reservation", "/reservations/1", `{"guestsCount": 2}`, reservations.ErrAccessDenied, http.StatusForbidden},
		{"canceled", "/reservations/1", `{"guestsCount": 2}`, reservations.ErrTransitionRejected, http.StatusConflict},
		{"empty patch", "/reservations/1", `{}`, reservations.ErrNothingToUpdate, http.StatusBadRequest},
		{"internal", "/reservations/1", `{"guestsCount": 2}`, updateReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&mockUseCase{err: tt.ucErr}, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
