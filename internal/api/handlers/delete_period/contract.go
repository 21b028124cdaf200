package delete_period

import (
	"context"

	"github.com/google/uuid"
)

type PeriodService interface {
	Delete(ctx context.Context, periodID, companyID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
