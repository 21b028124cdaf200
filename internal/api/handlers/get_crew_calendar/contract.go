package get_crew_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

type CalendarService interface {
	CrewEvents(ctx context.Context, req *models.CrewEventsRequest) ([]models.CalendarRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
