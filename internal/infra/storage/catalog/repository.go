package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/psqlbuilder"
)

const tableName = "service_types"

var columns = []string{
	"id",
	"workspace_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"capacity",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога типов услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет тип услуги
func (r *Repository) Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("workspace_id", "name", "description", "duration_minutes", "price", "capacity", "is_active").
		Values(st.WorkspaceID, st.Name, st.Description, st.DurationMinutes, st.Price, st.Capacity, st.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return st, nil
}

// GetByID получает тип услуги по ID
func (r *Repository) GetByID(ctx context.Context, workspaceID, id int64) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	st, err := scanServiceType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service type: %w", ErrScanRow, err)
	}

	return st, nil
}

// List возвращает типы услуг рабочего пространства, onlyActive скрывает деактивированные
func (r *Repository) List(ctx context.Context, workspaceID int64, onlyActive bool) ([]domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC", "id ASC")
	if onlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.ServiceType, 0)
	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// Update перезаписывает изменяемые поля типа услуги
func (r *Repository) Update(ctx context.Context, st *domain.ServiceType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", st.Name).
		Set("description", st.Description).
		Set("duration_minutes", st.DurationMinutes).
		Set("price", st.Price).
		Set("capacity", st.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": st.ID, "workspace_id": st.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// SetActive включает или выключает тип услуги (мягкое удаление)
func (r *Repository) SetActive(ctx context.Context, workspaceID, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetActive", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, method, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrServiceTypeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanServiceType(row rowScanner) (*domain.ServiceType, error) {
	var st domain.ServiceType
	err := row.Scan(
		&st.ID,
		&st.WorkspaceID,
		&st.Name,
		&st.Description,
		&st.DurationMinutes,
		&st.Price,
		&st.Capacity,
		&st.IsActive,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
