package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/Turf-BookingService/internal/domain"
	"github.com/m04kA/Turf-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Turf-BookingService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"start_time",
	"end_time",
	"charge",
	"status",
	"notes",
	"parent_booking_id",
	"recurring_days",
	"recurring_end_date",
	"created_by",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает одно бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(insertColumns()...).
		Values(insertValues(booking)...).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// CreateMany создает серию бронирований одним INSERT
// Атомарность гарантируется вызывающей стороной: метод должен выполняться
// внутри транзакции (executor в контексте), чтобы вся серия была записана
// целиком или не записана вовсе
func (r *Repository) CreateMany(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	if len(bookings) == 0 {
		return nil, ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("bookings").Columns(insertColumns()...)
	for _, b := range bookings {
		insertBuilder = insertBuilder.Values(insertValues(b)...)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMany - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMany - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// PostgreSQL возвращает строки RETURNING в порядке вставки
	i := 0
	for rows.Next() {
		if i >= len(bookings) {
			return nil, fmt.Errorf("%w: CreateMany - unexpected extra row", ErrScanRow)
		}

		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&bookings[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateMany - scan row: %v", ErrScanRow, err)
		}
		bookings[i].CreatedAt = createdAt.Time
		bookings[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateMany - rows error: %v", ErrScanRow, err)
	}

	if i != len(bookings) {
		return nil, fmt.Errorf("%w: CreateMany - inserted %d of %d rows", ErrExecQuery, i, len(bookings))
	}

	return bookings, nil
}

// FindOverlapping находит неотменённые бронирования, пересекающиеся хотя бы
// с одним из переданных интервалов. Один запрос на весь набор кандидатов.
//
// Для каждого интервала применяется полуоткрытая проверка пересечения:
// start_time < interval.End AND end_time > interval.Start
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE), чтобы
// конкурирующее создание серии не прошло проверку одновременно
func (r *Repository) FindOverlapping(ctx context.Context, intervals []domain.Interval) ([]*domain.Booking, error) {
	if len(intervals) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	overlapConds := make(squirrel.Or, 0, len(intervals))
	for _, iv := range intervals {
		overlapConds = append(overlapConds, squirrel.And{
			squirrel.Lt{"start_time": iv.End},
			squirrel.Gt{"end_time": iv.Start},
		})
	}

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(overlapConds).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу, родительской серии
// и включению отменённых бронирований
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("bookings")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.EndDate})
	}

	// Фильтрация по серии
	if filter.ParentBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"parent_booking_id": *filter.ParentBookingID})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет одно бронирование с указанием причины
// Статус переводится в cancelled, строка не удаляется
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CancelSeries массово переводит бронирования серии в статус cancelled
// одним UPDATE. Уже отменённые строки не затрагиваются, поэтому повторный
// вызов вернёт 0 затронутых строк.
//
// minStartTime, если задан, ограничивает отмену бронированиями,
// начинающимися не раньше указанного момента (scope=future)
func (r *Repository) CancelSeries(ctx context.Context, parentBookingID string, minStartTime *time.Time, reason string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"parent_booking_id": parentBookingID}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})

	if minStartTime != nil {
		updateBuilder = updateBuilder.Where(squirrel.GtOrEq{"start_time": *minStartTime})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelSeries - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelSeries - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelSeries - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// insertColumns возвращает список колонок для INSERT
func insertColumns() []string {
	return []string{
		"customer_name",
		"customer_phone",
		"start_time",
		"end_time",
		"charge",
		"status",
		"notes",
		"parent_booking_id",
		"recurring_days",
		"recurring_end_date",
		"created_by",
	}
}

// insertValues возвращает значения бронирования в порядке insertColumns
func insertValues(b *domain.Booking) []interface{} {
	return []interface{}{
		b.CustomerName,
		b.CustomerPhone,
		b.StartTime,
		b.EndTime,
		b.Charge,
		b.Status,
		b.Notes,
		b.ParentBookingID,
		b.RecurringDays,
		b.RecurringEndDate,
		b.CreatedBy,
	}
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в модель бронирования
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Charge,
		&booking.Status,
		&booking.Notes,
		&booking.ParentBookingID,
		&booking.RecurringDays,
		&booking.RecurringEndDate,
		&booking.CreatedBy,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
