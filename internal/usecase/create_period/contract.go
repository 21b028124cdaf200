package create_period

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.Period) (*domain.Period, error)
}

// ReservationRepository интерфейс репозитория связок периодов и сущностей
type ReservationRepository interface {
	LinkVehicle(ctx context.Context, periodID, vehicleID uuid.UUID) error
	LinkItems(ctx context.Context, periodID uuid.UUID, itemIDs []uuid.UUID) error
	LinkUser(ctx context.Context, periodID, userID uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
