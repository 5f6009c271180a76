package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
	"github.com/m04kA/SMC-TableReservation/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableReservation/pkg/pgerrors"
	"github.com/m04kA/SMC-TableReservation/pkg/psqlbuilder"
)

const (
	tableName = "reservations"

	// UniqueSlotConstraint ограничение (table_id, date, start_time) из миграции
	UniqueSlotConstraint = "unique_reservation"
)

var columns = []string{
	"id",
	"table_id",
	"user_id",
	"date",
	"start_time",
	"duration_minutes",
	"guests_count",
	"status",
	"source",
	"event",
	"extended_by_admin",
	"staff_user_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование и заполняет ID и временные метки
// Нарушение unique_reservation и конфликт сериализации возвращаются как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"table_id",
			"user_id",
			"date",
			"start_time",
			"duration_minutes",
			"guests_count",
			"status",
			"source",
			"event",
			"extended_by_admin",
			"staff_user_id",
		).
		Values(
			res.TableID,
			res.UserID,
			res.Date.Format(domain.DateFormat),
			res.StartTime,
			res.DurationMinutes,
			res.GuestsCount,
			res.Status,
			res.Source,
			res.Event,
			res.ExtendedByAdmin,
			res.StaffUserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isSlotTaken(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// Update сохраняет изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("table_id", res.TableID).
		Set("date", res.Date.Format(domain.DateFormat)).
		Set("start_time", res.StartTime).
		Set("duration_minutes", res.DurationMinutes).
		Set("guests_count", res.GuestsCount).
		Set("status", res.Status).
		Set("event", res.Event).
		Set("extended_by_admin", res.ExtendedByAdmin).
		Set("staff_user_id", res.StaffUserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isSlotTaken(err) {
			return nil, fmt.Errorf("%w: Update: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return res, nil
}

// UpdateStatus меняет статус одного бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSlotTaken(err) {
			return fmt.Errorf("%w: UpdateStatus: %v", ErrSlotTaken, err)
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// BulkTransition переводит все бронирования, подходящие под фильтр, в статус to
// Возвращает количество измененных строк. Повторный вызов ничего не меняет.
func (r *Repository) BulkTransition(ctx context.Context, filter domain.StatusTransitionFilter, to domain.ReservationStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": filter.FromStatus}).
		Where(squirrel.Lt{"date": filter.DateBefore.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkTransition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkTransition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkTransition - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isSlotTaken(err) {
			return nil, fmt.Errorf("%w: GetByID: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// FindByTableAndDate получает бронирования столика на дату с указанными статусами
// Используется проверкой доступности. Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) FindByTableAndDate(ctx context.Context, tableID int64, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"table_id": tableID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")

	if len(statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(statuses)})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.query(ctx, "FindByTableAndDate", selectBuilder)
}

// FindByTablesAndDate получает бронирования нескольких столиков на дату одним запросом
func (r *Repository) FindByTablesAndDate(ctx context.Context, tableIDs []int64, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	if len(tableIDs) == 0 {
		return nil, nil
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"table_id": tableIDs}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("table_id ASC", "start_time ASC")

	if len(statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(statuses)})
	}

	return r.query(ctx, "FindByTablesAndDate", selectBuilder)
}

// List получает бронирования по фильтру, новые даты первыми
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("date DESC", "start_time DESC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.Date.Format(domain.DateFormat)})
	}
	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}

	return r.query(ctx, "List", selectBuilder)
}

func (r *Repository) query(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isSlotTaken(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrSlotTaken, op, err)
		}
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res         domain.Reservation
		event       sql.NullString
		staffUserID sql.NullInt64
	)

	err := row.Scan(
		&res.ID,
		&res.TableID,
		&res.UserID,
		&res.Date,
		&res.StartTime,
		&res.DurationMinutes,
		&res.GuestsCount,
		&res.Status,
		&res.Source,
		&event,
		&res.ExtendedByAdmin,
		&staffUserID,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Date = clock.DateOf(res.Date)
	if event.Valid {
		res.Event = &event.String
	}
	if staffUserID.Valid {
		res.StaffUserID = &staffUserID.Int64
	}

	return &res, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

// isSlotTaken конкурентная вставка в тот же слот проявляется либо нарушением
// уникальности, либо конфликтом сериализации
func isSlotTaken(err error) bool {
	return pgerrors.IsUniqueViolation(err, UniqueSlotConstraint) || pgerrors.IsSerializationFailure(err)
}
