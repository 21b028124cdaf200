package get_vehicle_calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// from - нижняя граница даты начала (YYYY-MM-DD, включительно);
// limit и offset задают окно строк [offset, offset+limit-1]
func ToServiceRequest(
	companyID uuid.UUID,
	vehicleID uuid.UUID,
	fromStr string,
	limitStr string,
	offsetStr string,
) (*models.VehicleEventsRequest, error) {
	req := &models.VehicleEventsRequest{
		CompanyID: companyID,
		VehicleID: vehicleID,
	}

	// Парсим from если указана
	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %w", err)
		}
		req.From = &from
	}

	// Парсим limit если указан (не больше 31 бита, чтобы значение влезало в ключ кэша)
	if limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 31)
		if err != nil || limit == 0 {
			return nil, fmt.Errorf("invalid limit value: %s", limitStr)
		}
		req.Limit = &limit
	}

	// Парсим offset если указан (только вместе с limit)
	if offsetStr != "" {
		if req.Limit == nil {
			return nil, fmt.Errorf("offset requires limit")
		}
		offset, err := strconv.ParseUint(offsetStr, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid offset value: %s", offsetStr)
		}
		req.Offset = &offset
	}

	return req, nil
}
