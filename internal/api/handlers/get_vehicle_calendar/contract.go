package get_vehicle_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

type CalendarService interface {
	VehicleEvents(ctx context.Context, req *models.VehicleEventsRequest) ([]models.CalendarRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
