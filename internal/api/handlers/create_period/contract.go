package create_period

import (
	"context"

	createPeriodUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_period"
)

type CreatePeriodUseCase interface {
	Execute(ctx context.Context, req *createPeriodUC.Request) (*createPeriodUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
