package calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error)
}

// ReservationRepository интерфейс репозитория связок периодов и сущностей
type ReservationRepository interface {
	PeriodIDsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error)
	PeriodIDsByItem(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error)
	PeriodIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	VehicleLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	ItemLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	UserLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
}

// JobRepository интерфейс репозитория работ
type JobRepository interface {
	TitlesByIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]string, error)
	InfoWithLeadByIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]domain.JobInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
