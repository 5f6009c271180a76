package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
)

// parseQuery разбирает ?userId=&tableId=&date=&status=pending,confirmed
func parseQuery(actor domain.Actor, q url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{Actor: actor}

	if v := q.Get("userId"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("userId: %w", err)
		}
		req.UserID = &userID
	}

	if v := q.Get("tableId"); v != "" {
		tableID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tableId: %w", err)
		}
		req.TableID = &tableID
	}

	if v := q.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		req.Date = &date
	}

	if v := q.Get("status"); v != "" {
		for _, s := range strings.Split(v, ",") {
			req.Statuses = append(req.Statuses, domain.ReservationStatus(strings.TrimSpace(s)))
		}
	}

	return req, nil
}
