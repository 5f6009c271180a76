package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/availability"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondFieldError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFieldError(rec, rules.NewFieldError(rules.FieldGuestsCount, rules.ErrTooManyGuests))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "guests_count", resp.Field)
	assert.Equal(t, msgTooManyGuests, resp.Error)
	assert.Nil(t, resp.Conflict)
}

func TestRespondFieldError_ConflictCarriesInterval(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	interval, err := domain.NewInterval(date, "18:00", 3*time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	RespondFieldError(rec, rules.NewFieldError(rules.FieldTable,
		&availability.ConflictError{ReservationID: 9, Interval: interval}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "table", resp.Field)
	assert.Equal(t, msgTableBooked, resp.Error)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, ConflictInterval{ReservationID: 9, StartTime: "18:00", EndTime: "21:00"}, *resp.Conflict)
}

func TestRespondFieldError_SlotTaken(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFieldError(rec, rules.NewFieldError(rules.FieldTable, availability.ErrSlotTaken))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgSlotTaken, decodeError(t, rec).Error)
}

func TestTransitionErrorMessage(t *testing.T) {
	err := fmt.Errorf("%w: %w", reservations.ErrTransitionRejected, lifecycle.ErrConfirmNotToday)
	assert.Equal(t, msgConfirmNotToday, TransitionErrorMessage(err))
	assert.Equal(t, msgInvalidTransition, TransitionErrorMessage(reservations.ErrTransitionRejected))
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		TableID int64 `json:"tableId"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"tableId": 1, "price": 5}`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"tableId": 3}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, int64(3), v.TableID)
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
