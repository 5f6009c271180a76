package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableReservation/pkg/psqlbuilder"
)

const (
	hallsTable  = "halls"
	tablesTable = "tables"
)

var (
	hallColumns  = []string{"id", "name", "description", "width", "height"}
	tableColumns = []string{"id", "hall_id", "number", "capacity", "x_position", "y_position", "is_active"}
)

// Repository репозиторий залов и столиков
// Раскладка зала редактируется вне сервиса, здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHall получает зал по ID
func (r *Repository) GetHall(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From(hallsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHall - build select query: %v", ErrBuildQuery, err)
	}

	var hall domain.Hall
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Description,
		&hall.Width,
		&hall.Height,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHall - scan hall: %v", ErrScanRow, err)
	}

	return &hall, nil
}

// ListHalls получает все залы, упорядоченные по названию
func (r *Repository) ListHalls(ctx context.Context) ([]*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From(hallsTable).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHalls - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHalls - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		var hall domain.Hall
		if err := rows.Scan(&hall.ID, &hall.Name, &hall.Description, &hall.Width, &hall.Height); err != nil {
			return nil, fmt.Errorf("%w: ListHalls - scan hall: %v", ErrScanRow, err)
		}
		halls = append(halls, &hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHalls - rows iteration: %v", ErrScanRow, err)
	}

	return halls, nil
}

// GetTable получает столик по ID
func (r *Repository) GetTable(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From(tablesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTable - build select query: %v", ErrBuildQuery, err)
	}

	table, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTable - scan table: %v", ErrScanRow, err)
	}

	return table, nil
}

// TablesOf получает все столики зала, включая неактивные
func (r *Repository) TablesOf(ctx context.Context, hallID int64) ([]*domain.Table, error) {
	return r.queryTables(ctx, "TablesOf", tablesQuery(hallID))
}

// TablesFilteredByCapacity получает активные столики зала вместимостью не меньше minCapacity
func (r *Repository) TablesFilteredByCapacity(ctx context.Context, hallID int64, minCapacity int) ([]*domain.Table, error) {
	return r.queryTables(ctx, "TablesFilteredByCapacity",
		tablesQuery(hallID).
			Where(squirrel.Eq{"is_active": true}).
			Where(squirrel.GtOrEq{"capacity": minCapacity}))
}

func tablesQuery(hallID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(tableColumns...).
		From(tablesTable).
		Where(squirrel.Eq{"hall_id": hallID}).
		OrderBy("id ASC")
}

func (r *Repository) queryTables(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan table: %v", ErrScanRow, op, err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return tables, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var table domain.Table
	err := row.Scan(
		&table.ID,
		&table.HallID,
		&table.Number,
		&table.Capacity,
		&table.XPosition,
		&table.YPosition,
		&table.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &table, nil
}
