package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

const (
	schedulesTable = "workspace_schedules"
	intervalsTable = "operating_intervals"
)

// Repository хранит расписания рабочих пространств
// Расписание - строка workspace_schedules и набор интервалов operating_intervals
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает расписание вместе с интервалами работы
func (r *Repository) Get(ctx context.Context, workspaceID int64) (*domain.WorkspaceSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("workspace_id", "timezone", "slot_granularity_minutes", "updated_at").
		From(schedulesTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	s := domain.WorkspaceSchedule{Hours: domain.OperatingHours{}}
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.WorkspaceID,
		&s.Timezone,
		&s.SlotGranularityMinutes,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %w", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select("weekday", "start_time", "end_time").
		From(intervalsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build intervals query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute intervals query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			weekday    int
			start, end types.TimeString
		)
		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: Get - scan interval: %v", ErrScanRow, err)
		}
		day := time.Weekday(weekday)
		s.Hours[day] = append(s.Hours[day], domain.Interval{Start: start, End: end})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %w", ErrScanRow, err)
	}

	return &s, nil
}

// Replace заменяет расписание целиком
// Должен вызываться внутри транзакции: сначала upsert строки расписания, затем
// удаление и вставка интервалов
func (r *Repository) Replace(ctx context.Context, s *domain.WorkspaceSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Upsert основной строки
	query, args, err := psqlbuilder.Insert(schedulesTable).
		Columns("workspace_id", "timezone", "slot_granularity_minutes", "updated_at").
		Values(s.WorkspaceID, s.Timezone, s.SlotGranularityMinutes, s.UpdatedAt).
		Suffix("ON CONFLICT (workspace_id) DO UPDATE SET " +
			"timezone = EXCLUDED.timezone, " +
			"slot_granularity_minutes = EXCLUDED.slot_granularity_minutes, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute upsert: %w", ErrExecQuery, err)
	}

	// 2. Удаляем старые интервалы
	query, args, err = psqlbuilder.Delete(intervalsTable).
		Where(squirrel.Eq{"workspace_id": s.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %w", ErrExecQuery, err)
	}

	// 3. Вставляем новые одним запросом
	insert := psqlbuilder.Insert(intervalsTable).Columns("workspace_id", "weekday", "start_time", "end_time")
	count := 0
	for day := time.Sunday; day <= time.Saturday; day++ {
		for _, iv := range s.Hours[day] {
			insert = insert.Values(s.WorkspaceID, int(day), iv.Start, iv.End)
			count++
		}
	}
	if count == 0 {
		return nil
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build intervals insert: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute intervals insert: %w", ErrExecQuery, err)
	}

	return nil
}
