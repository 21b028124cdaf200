package periods

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Period, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
