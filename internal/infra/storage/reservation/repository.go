package reservation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Таблицы-связки периодов с сущностями
// Три структурно одинаковых отношения, по одному на вид сущности
const (
	tableVehicleLinks = "time_period_vehicles"
	tableItemLinks    = "time_period_items"
	tableUserLinks    = "time_period_users"

	columnPeriodID = "time_period_id"
	columnVehicle  = "vehicle_id"
	columnItem     = "item_id"
	columnUser     = "user_id"
)

// Repository репозиторий для работы со связками периодов и сущностей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория связок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// PeriodIDsByVehicle получает идентификаторы периодов, ссылающихся на транспорт
func (r *Repository) PeriodIDsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error) {
	return r.periodIDsByEntity(ctx, tableVehicleLinks, columnVehicle, vehicleID)
}

// PeriodIDsByItem получает идентификаторы периодов, ссылающихся на оборудование
func (r *Repository) PeriodIDsByItem(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	return r.periodIDsByEntity(ctx, tableItemLinks, columnItem, itemID)
}

// PeriodIDsByUser получает идентификаторы периодов, ссылающихся на сотрудника
func (r *Repository) PeriodIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.periodIDsByEntity(ctx, tableUserLinks, columnUser, userID)
}

// VehicleLinksByPeriods получает связки транспорта по набору периодов
// Возвращает отображение period id -> vehicle id
func (r *Repository) VehicleLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	return r.singleLinksByPeriods(ctx, tableVehicleLinks, columnVehicle, periodIDs)
}

// UserLinksByPeriods получает связки сотрудников по набору периодов
// Возвращает отображение period id -> user id
func (r *Repository) UserLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	return r.singleLinksByPeriods(ctx, tableUserLinks, columnUser, periodIDs)
}

// ItemLinksByPeriods получает связки оборудования по набору периодов
// Один период может ссылаться на несколько единиц оборудования,
// поэтому возвращается отображение period id -> срез item id
func (r *Repository) ItemLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	result := make(map[uuid.UUID][]uuid.UUID)
	if len(periodIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnPeriodID, columnItem).
		From(tableItemLinks).
		Where(squirrel.Eq{columnPeriodID: periodIDs}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ItemLinksByPeriods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ItemLinksByPeriods - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var periodID, itemID uuid.UUID
		if err := rows.Scan(&periodID, &itemID); err != nil {
			return nil, fmt.Errorf("%w: ItemLinksByPeriods - scan row: %v", ErrScanRow, err)
		}
		result[periodID] = append(result[periodID], itemID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ItemLinksByPeriods - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// LinkVehicle привязывает транспорт к периоду
func (r *Repository) LinkVehicle(ctx context.Context, periodID, vehicleID uuid.UUID) error {
	return r.insertLink(ctx, tableVehicleLinks, columnVehicle, periodID, vehicleID)
}

// LinkUser привязывает сотрудника к периоду
func (r *Repository) LinkUser(ctx context.Context, periodID, userID uuid.UUID) error {
	return r.insertLink(ctx, tableUserLinks, columnUser, periodID, userID)
}

// LinkItems привязывает набор оборудования к периоду одним запросом
func (r *Repository) LinkItems(ctx context.Context, periodID uuid.UUID, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(tableItemLinks).
		Columns(columnPeriodID, columnItem)
	for _, itemID := range itemIDs {
		insertBuilder = insertBuilder.Values(periodID, itemID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: LinkItems - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LinkItems - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// periodIDsByEntity получает идентификаторы периодов по сущности из таблицы-связки
func (r *Repository) periodIDsByEntity(ctx context.Context, table, entityColumn string, entityID uuid.UUID) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnPeriodID).
		From(table).
		Where(squirrel.Eq{entityColumn: entityID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: periodIDsByEntity(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: periodIDsByEntity(%s) - execute query: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	periodIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var periodID uuid.UUID
		if err := rows.Scan(&periodID); err != nil {
			return nil, fmt.Errorf("%w: periodIDsByEntity(%s) - scan row: %v", ErrScanRow, table, err)
		}
		periodIDs = append(periodIDs, periodID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: periodIDsByEntity(%s) - rows error: %v", ErrScanRow, table, err)
	}

	return periodIDs, nil
}

// singleLinksByPeriods получает связки "один к одному" по набору периодов
func (r *Repository) singleLinksByPeriods(ctx context.Context, table, entityColumn string, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	result := make(map[uuid.UUID]uuid.UUID)
	if len(periodIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnPeriodID, entityColumn).
		From(table).
		Where(squirrel.Eq{columnPeriodID: periodIDs}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: singleLinksByPeriods(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: singleLinksByPeriods(%s) - execute query: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var periodID, entityID uuid.UUID
		if err := rows.Scan(&periodID, &entityID); err != nil {
			return nil, fmt.Errorf("%w: singleLinksByPeriods(%s) - scan row: %v", ErrScanRow, table, err)
		}
		result[periodID] = entityID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: singleLinksByPeriods(%s) - rows error: %v", ErrScanRow, table, err)
	}

	return result, nil
}

// insertLink вставляет одну связку период-сущность
func (r *Repository) insertLink(ctx context.Context, table, entityColumn string, periodID, entityID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columnPeriodID, entityColumn).
		Values(periodID, entityID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: insertLink(%s) - build insert query: %v", ErrBuildQuery, table, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertLink(%s) - execute insert: %v", ErrExecQuery, table, err)
	}

	return nil
}
