package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/psqlbuilder"
)

const (
	itemsTable = "inventory_items"
	rulesTable = "consumption_rules"
)

// Колонка status не читается: статус всегда пересчитывается из quantity и reorder_level
var itemColumns = []string{
	"id",
	"workspace_id",
	"name",
	"sku",
	"category",
	"quantity",
	"reorder_level",
	"unit_cost",
	"supplier",
	"location",
	"notes",
	"last_restocked",
	"created_at",
	"updated_at",
}

// Repository репозиторий склада и правил списания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория склада
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет позицию склада, статус записывается как функция количества
func (r *Repository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(itemsTable).
		Columns(
			"workspace_id",
			"name",
			"sku",
			"category",
			"quantity",
			"reorder_level",
			"status",
			"unit_cost",
			"supplier",
			"location",
			"notes",
			"last_restocked",
		).
		Values(
			item.WorkspaceID,
			item.Name,
			item.SKU,
			item.Category,
			item.Quantity,
			item.ReorderLevel,
			string(item.Status()),
			item.UnitCost,
			item.Supplier,
			item.Location,
			item.Notes,
			item.LastRestocked,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID получает позицию склада, внутри транзакции строка блокируется
func (r *Repository) GetByID(ctx context.Context, workspaceID, id int64) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"id": id, "workspace_id": workspaceID})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %w", ErrScanRow, err)
	}

	return item, nil
}

// GetByIDs получает несколько позиций склада
// Внутри транзакции строки блокируются в порядке id, чтобы параллельные списания не уходили в дедлок
func (r *Repository) GetByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]domain.InventoryItem, error) {
	if len(ids) == 0 {
		return []domain.InventoryItem{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID, "id": ids}).
		OrderBy("id ASC")
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryItems(ctx, executor, "GetByIDs", query, args)
}

// List возвращает позиции склада по фильтру, отсортированные по названию
func (r *Repository) List(ctx context.Context, workspaceID int64, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listItemsQuery(workspaceID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryItems(ctx, executor, "List", query, args)
}

func listItemsQuery(workspaceID int64, filter domain.InventoryFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC", "id ASC")

	if filter.Query != nil && strings.TrimSpace(*filter.Query) != "" {
		pattern := psqlbuilder.ContainsPattern(*filter.Query)
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"sku": pattern},
			squirrel.ILike{"category": pattern},
			squirrel.ILike{"supplier": pattern},
		})
	}
	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}

	return builder
}

// UpdateStock сохраняет количество и дату пополнения
// Колонка status перезаписывается вместе с количеством и никогда отдельно
func (r *Repository) UpdateStock(ctx context.Context, item *domain.InventoryItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(itemsTable).
		Set("quantity", item.Quantity).
		Set("status", string(item.Status())).
		Set("last_restocked", item.LastRestocked).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID, "workspace_id": item.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStock - execute update: %w", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStock - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Update сохраняет отредактированные поля позиции
// status пересчитывается из quantity и reorder_level в том же запросе
func (r *Repository) Update(ctx context.Context, item *domain.InventoryItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(itemsTable).
		Set("name", item.Name).
		Set("sku", item.SKU).
		Set("category", item.Category).
		Set("quantity", item.Quantity).
		Set("reorder_level", item.ReorderLevel).
		Set("status", string(domain.StockStatusFor(item.Quantity, item.ReorderLevel))).
		Set("unit_cost", item.UnitCost).
		Set("supplier", item.Supplier).
		Set("location", item.Location).
		Set("notes", item.Notes).
		Set("last_restocked", item.LastRestocked).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID, "workspace_id": item.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete удаляет позицию склада вместе с правилами списания (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, workspaceID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(itemsTable).
		Where(squirrel.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// GetRules возвращает правила списания для типа услуги
func (r *Repository) GetRules(ctx context.Context, workspaceID, serviceTypeID int64) ([]domain.ConsumptionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_type_id", "inventory_item_id", "quantity_per_booking").
		From(rulesTable).
		Where(squirrel.Eq{"workspace_id": workspaceID, "service_type_id": serviceTypeID}).
		OrderBy("inventory_item_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.ConsumptionRule, 0)
	for rows.Next() {
		var rule domain.ConsumptionRule
		if err := rows.Scan(&rule.ServiceTypeID, &rule.InventoryItemID, &rule.QuantityPerBooking); err != nil {
			return nil, fmt.Errorf("%w: GetRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRules - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceRules заменяет правила списания типа услуги, вызывается внутри транзакции
func (r *Repository) ReplaceRules(ctx context.Context, workspaceID, serviceTypeID int64, rules []domain.ConsumptionRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(rulesTable).
		Where(squirrel.Eq{"workspace_id": workspaceID, "service_type_id": serviceTypeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRules - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRules - execute delete: %w", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(rulesTable).
		Columns("workspace_id", "service_type_id", "inventory_item_id", "quantity_per_booking")
	for _, rule := range rules {
		insert = insert.Values(workspaceID, serviceTypeID, rule.InventoryItemID, rule.QuantityPerBooking)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRules - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRules - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) queryItems(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) ([]domain.InventoryItem, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, method, err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ID,
		&item.WorkspaceID,
		&item.Name,
		&item.SKU,
		&item.Category,
		&item.Quantity,
		&item.ReorderLevel,
		&item.UnitCost,
		&item.Supplier,
		&item.Location,
		&item.Notes,
		&item.LastRestocked,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
