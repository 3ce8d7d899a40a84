package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/psqlbuilder"
)

const tableName = "bookings"

var columns = []string{
	"id",
	"workspace_id",
	"service_type_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"notes",
	"assigned_staff",
	"service_name",
	"total_price",
	"consumption_applied",
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

// Create сохраняет новое бронирование и заполняет ID и метки времени
// Вызывается внутри сериализуемой транзакции создания бронирования
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"workspace_id",
			"service_type_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"notes",
			"assigned_staff",
			"service_name",
			"total_price",
			"consumption_applied",
			"created_at",
			"updated_at",
		).
		Values(
			b.WorkspaceID,
			b.ServiceTypeID,
			b.Customer.Name,
			b.Customer.Email,
			b.Customer.Phone,
			b.Date.Format(domain.DateFormat),
			b.Slot.Start,
			b.Slot.End,
			b.Status,
			b.Notes,
			b.AssignedStaff,
			b.ServiceName,
			b.TotalPrice,
			b.ConsumptionApplied,
			b.CreatedAt,
			b.UpdatedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID в рамках рабочего пространства
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, workspaceID, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id, "workspace_id": workspaceID})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// GetForDay возвращает все бронирования услуги на дату, включая отмененные
// Внутри транзакции строки дня блокируются (FOR UPDATE), чтобы параллельные
// создания бронирований на тот же день выстраивались в очередь
func (r *Repository) GetForDay(ctx context.Context, workspaceID, serviceTypeID int64, date time.Time) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"workspace_id":    workspaceID,
			"service_type_id": serviceTypeID,
			"booking_date":    date.Format(domain.DateFormat),
		}).
		OrderBy("start_time ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List возвращает бронирования рабочего пространства по фильтру
//
// Сортировка:
// - если задан DateFrom (выборка предстоящих) - по возрастанию даты и времени
// - иначе - сначала новые
func (r *Repository) List(ctx context.Context, workspaceID int64, filter domain.BookingsFilter) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(workspaceID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func listQuery(workspaceID int64, filter domain.BookingsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"workspace_id": workspaceID})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"booking_date": filter.DateTo.Format(domain.DateFormat)})
	}

	if filter.Query != nil && strings.TrimSpace(*filter.Query) != "" {
		pattern := psqlbuilder.ContainsPattern(*filter.Query)
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"customer_email": pattern},
			squirrel.ILike{"customer_phone": pattern},
			squirrel.ILike{"service_name": pattern},
		})
	}

	if filter.DateFrom != nil || filter.Date != nil {
		builder = builder.OrderBy("booking_date ASC", "start_time ASC", "id ASC")
	} else {
		builder = builder.OrderBy("booking_date DESC", "start_time DESC", "id DESC")
	}

	if filter.Limit != nil && *filter.Limit > 0 {
		builder = builder.Limit(uint64(*filter.Limit))
	}

	return builder
}

// UpdateStatus сохраняет новый статус и флаг списания материалов
func (r *Repository) UpdateStatus(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", b.Status).
		Set("consumption_applied", b.ConsumptionApplied).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{"id": b.ID, "workspace_id": b.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByServiceType считает бронирования, ссылающиеся на тип услуги
func (r *Repository) CountByServiceType(ctx context.Context, workspaceID, serviceTypeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"workspace_id": workspaceID, "service_type_id": serviceTypeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByServiceType - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByServiceType - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b     domain.Booking
		phone sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.WorkspaceID,
		&b.ServiceTypeID,
		&b.Customer.Name,
		&b.Customer.Email,
		&phone,
		&b.Date,
		&b.Slot.Start,
		&b.Slot.End,
		&b.Status,
		&b.Notes,
		&b.AssignedStaff,
		&b.ServiceName,
		&b.TotalPrice,
		&b.ConsumptionApplied,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		b.Customer.Phone = &phone.String
	}
	b.Date = domain.DateOf(b.Date)

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
