package get_item_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

type CalendarService interface {
	ItemEvents(ctx context.Context, req *models.ItemEventsRequest) ([]models.CalendarRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
