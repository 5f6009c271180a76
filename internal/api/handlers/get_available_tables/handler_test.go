package get_available_tables

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	getAvailableTables "github.com/m04kA/SMC-TableReservation/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

type mockUseCase struct {
	got *getAvailableTables.Request
	err error
}

func (m *mockUseCase) Execute(_ context.Context, req *getAvailableTables.Request) (*getAvailableTables.Response, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return &getAvailableTables.Response{
		HallID: req.HallID,
		Tables: []domain.TableSummary{{ID: 2, Number: "2", Capacity: 4}, {ID: 10, Number: "10", Capacity: 6}},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/halls/{hallId}/available-tables", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(NewHandler(uc, nopLogger{}), "/halls/1/available-tables?date=2024-06-01&time=19:00&guests=4")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), uc.got.HallID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, types.TimeString("19:00"), uc.got.StartTime)
	assert.Equal(t, 4, uc.got.PartySize)

	var resp AvailableTablesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []TableResponse{{ID: 2, Number: "2", Capacity: 4}, {ID: 10, Number: "10", Capacity: 6}}, resp.Tables)
}

func TestHandle_DefaultsPartySize(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(NewHandler(uc, nopLogger{}), "/halls/1/available-tables")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.got.PartySize)
	assert.True(t, uc.got.Date.IsZero())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
	}{
		{"bad hall id", "/halls/x/available-tables", nil, http.StatusBadRequest},
		{"bad date", "/halls/1/available-tables?date=01.06.2024", nil, http.StatusBadRequest},
		{"bad time", "/halls/1/available-tables?time=7pm", nil, http.StatusBadRequest},
		{"bad guests", "/halls/1/available-tables?guests=many", nil, http.StatusBadRequest},
		{"hall not found", "/halls/9/available-tables", getAvailableTables.ErrHallNotFound, http.StatusNotFound},
		{"internal", "/halls/1/available-tables", getAvailableTables.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&mockUseCase{err: tt.ucErr}, nopLogger{}), tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
