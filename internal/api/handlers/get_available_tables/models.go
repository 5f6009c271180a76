package get_available_tables

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	getAvailableTables "github.com/m04kA/SMC-TableReservation/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// TableResponse свободный столик
type TableResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
}

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	Tables []TableResponse `json:"tables"`
}

// parseQuery разбирает ?date=YYYY-MM-DD&time=HH:MM&guests=N; все параметры необязательны
func parseQuery(hallID int64, q url.Values) (*getAvailableTables.Request, error) {
	req := &getAvailableTables.Request{HallID: hallID, PartySize: 1}

	if v := q.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		req.Date = date
	}

	if v := q.Get("time"); v != "" {
		start, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, fmt.Errorf("time: %w", err)
		}
		req.StartTime = start
	}

	if v := q.Get("guests"); v != "" {
		guests, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("guests: %w", err)
		}
		req.PartySize = guests
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTables.Response) *AvailableTablesResponse {
	tables := make([]TableResponse, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		tables = append(tables, TableResponse{ID: t.ID, Number: t.Number, Capacity: t.Capacity})
	}
	return &AvailableTablesResponse{Tables: tables}
}
