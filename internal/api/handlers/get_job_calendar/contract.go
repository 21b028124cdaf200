package get_job_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

type CalendarService interface {
	JobEvents(ctx context.Context, req *models.JobEventsRequest) ([]models.CalendarRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
