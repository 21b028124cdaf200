package period

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// periodColumns полный набор колонок таблицы time_periods
var periodColumns = []string{
	"id",
	"company_id",
	"job_id",
	"title",
	"start_at",
	"end_at",
	"category",
	"notes",
	"location",
	"meta",
	"deleted",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с периодами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает периоды компании с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Явному набору идентификаторов (IDs) - опционально
// - Категории (Category) - опционально
// - Работе (JobID) - опционально
// - Нижней границе начала (From, включительно) - опционально
// - Пагинации (Limit + Offset) - опционально
//
// Удаленные периоды исключаются всегда, сортировка всегда по start_at ASC.
// Пустой (но не nil) набор IDs означает "ничего не выбрано" -
// запрос к БД не выполняется, возвращается пустой срез
func (r *Repository) List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
	// Пустой IN () в некоторых драйверах ошибка, а не пустой результат
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []*domain.Period{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(periodColumns...).
		From("time_periods").
		Where(squirrel.Eq{"company_id": filter.CompanyID}).
		Where(squirrel.Eq{"deleted": false})

	if filter.IDs != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": filter.IDs})
	}

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	if filter.JobID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"job_id": *filter.JobID})
	}

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.From})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC")

	// Пагинация: окно строк [offset, offset+limit-1] включительно
	if filter.Limit != nil {
		selectBuilder = selectBuilder.Limit(*filter.Limit)
		if filter.Offset != nil {
			selectBuilder = selectBuilder.Offset(*filter.Offset)
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPeriods(rows)
}

// GetByID получает период по ID
// Удаленные периоды трактуются как отсутствующие
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(periodColumns...).
		From("time_periods").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted": false}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	period, err := scanPeriod(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan period: %v", ErrScanRow, err)
	}

	return period, nil
}

// Create создает новый период
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, period *domain.Period) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_periods").
		Columns(
			"id",
			"company_id",
			"job_id",
			"title",
			"start_at",
			"end_at",
			"category",
			"notes",
			"location",
			"meta",
			"deleted",
		).
		Values(
			period.ID,
			period.CompanyID,
			nullableUUID(period.JobID),
			period.Title,
			period.StartAt,
			period.EndAt,
			period.Category,
			period.Notes,
			period.Location,
			period.Meta,
			false,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	period.Deleted = false
	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return period, nil
}

// SoftDelete помечает период удаленным
// Физическое удаление не используется - календарь фильтрует по флагу deleted
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_periods").
		Set("deleted", true).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}

// scanPeriods сканирует результаты запроса в срез периодов
func (r *Repository) scanPeriods(rows *sql.Rows) ([]*domain.Period, error) {
	periods := make([]*domain.Period, 0)

	for rows.Next() {
		period, err := scanPeriod(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPeriods - scan row: %v", ErrScanRow, err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPeriods - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// scanPeriod сканирует одну строку time_periods
func scanPeriod(scan func(dest ...interface{}) error) (*domain.Period, error) {
	var (
		period               domain.Period
		jobID                uuid.NullUUID
		title                sql.NullString
		endAt                sql.NullTime
		notes, location      sql.NullString
		meta                 sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := scan(
		&period.ID,
		&period.CompanyID,
		&jobID,
		&title,
		&period.StartAt,
		&endAt,
		&period.Category,
		&notes,
		&location,
		&meta,
		&period.Deleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if jobID.Valid {
		id := jobID.UUID
		period.JobID = &id
	}
	period.Title = nullableString(title)
	if endAt.Valid {
		t := endAt.Time
		period.EndAt = &t
	}
	period.Notes = nullableString(notes)
	period.Location = nullableString(location)
	period.Meta = nullableString(meta)
	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return &period, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
