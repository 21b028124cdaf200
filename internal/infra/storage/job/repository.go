package job

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

// Repository репозиторий для чтения данных работ и профилей руководителей
// Только чтение - жизненным циклом работ управляет другой сервис
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория работ
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// TitlesByIDs получает названия работ одним батчевым запросом
// Возвращает отображение job id -> название
// Пустой набор идентификаторов не приводит к запросу в БД
func (r *Repository) TitlesByIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string)
	if len(jobIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title").
		From("jobs").
		Where(squirrel.Eq{"id": jobIDs}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TitlesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TitlesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			title string
		)
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("%w: TitlesByIDs - scan row: %v", ErrScanRow, err)
		}
		result[id] = title
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TitlesByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// InfoWithLeadByIDs получает названия работ вместе с профилем руководителя проекта
// одним батчевым запросом (LEFT JOIN на profiles)
// Возвращает отображение job id -> JobInfo; Lead равен nil, когда руководитель не назначен
// Пустой набор идентификаторов не приводит к запросу в БД
func (r *Repository) InfoWithLeadByIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]domain.JobInfo, error) {
	result := make(map[uuid.UUID]domain.JobInfo)
	if len(jobIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"j.id",
		"j.title",
		"p.id",
		"p.display_name",
		"p.email",
		"p.avatar_url",
	).
		From("jobs j").
		LeftJoin("profiles p ON p.id = j.project_lead_id").
		Where(squirrel.Eq{"j.id": jobIDs}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InfoWithLeadByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: InfoWithLeadByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			info        domain.JobInfo
			leadID      uuid.NullUUID
			displayName sql.NullString
			email       sql.NullString
			avatarURL   sql.NullString
		)

		if err := rows.Scan(&info.ID, &info.Title, &leadID, &displayName, &email, &avatarURL); err != nil {
			return nil, fmt.Errorf("%w: InfoWithLeadByIDs - scan row: %v", ErrScanRow, err)
		}

		if leadID.Valid {
			lead := &domain.Profile{
				ID:          leadID.UUID,
				DisplayName: displayName.String,
			}
			if email.Valid {
				v := email.String
				lead.Email = &v
			}
			if avatarURL.Valid {
				v := avatarURL.String
				lead.AvatarURL = &v
			}
			info.Lead = lead
		}

		result[info.ID] = info
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: InfoWithLeadByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
