package models

import "github.com/m04kA/SMC-TableReservation/internal/domain"

// HallResponse зал с вычисляемыми показателями
type HallResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Width             int             `json:"width"`
	Height            int             `json:"height"`
	TotalCapacity     int             `json:"totalCapacity"`
	ActiveTablesCount int             `json:"activeTablesCount"`
	Tables            []TableResponse `json:"tables,omitempty"`
}

// TableResponse столик на схеме зала
type TableResponse struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Capacity  int    `json:"capacity"`
	XPosition int    `json:"x"`
	YPosition int    `json:"y"`
	IsActive  bool   `json:"isActive"`
}

// HallListResponse список залов
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

// FromDomainHall собирает ответ по залу; withTables добавляет схему столиков
func FromDomainHall(hall *domain.Hall, tables []*domain.Table, withTables bool) *HallResponse {
	resp := &HallResponse{
		ID:                hall.ID,
		Name:              hall.Name,
		Description:       hall.Description,
		Width:             hall.Width,
		Height:            hall.Height,
		TotalCapacity:     hall.TotalCapacity(tables),
		ActiveTablesCount: hall.ActiveTablesCount(tables),
	}

	if withTables {
		sorted := make([]*domain.Table, len(tables))
		copy(sorted, tables)
		domain.SortTablesByNumber(sorted)

		resp.Tables = make([]TableResponse, 0, len(sorted))
		for _, t := range sorted {
			resp.Tables = append(resp.Tables, TableResponse{
				ID:        t.ID,
				Number:    t.Number,
				Capacity:  t.Capacity,
				XPosition: t.XPosition,
				YPosition: t.YPosition,
				IsActive:  t.IsActive,
			})
		}
	}

	return resp
}
