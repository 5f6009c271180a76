package run_sweep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
)

type mockService struct {
	count int64
	err   error
	calls int
}

func (m *mockService) RunCompletionSweep(context.Context, time.Time) (int64, error) {
	m.calls++
	return m.count, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockService, role domain.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/sweep", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: role}))
	rec := httptest.NewRecorder()
	NewHandler(svc, clock.Fixed{At: time.Now()}, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{count: 4}
	rec := post(svc, domain.RoleStaff)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"completed": 4}`, rec.Body.String())

	guestSvc := &mockService{}
	assert.Equal(t, http.StatusForbidden, post(guestSvc, domain.RoleGuest).Code)
	assert.Zero(t, guestSvc.calls)

	assert.Equal(t, http.StatusInternalServerError, post(&mockService{err: errors.New("db")}, domain.RoleStaff).Code)
}
