package get_company_calendar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(companyID uuid.UUID, categoryStr string) (*models.CompanyEventsRequest, error) {
	req := &models.CompanyEventsRequest{
		CompanyID: companyID,
	}

	// Парсим category если указана
	if categoryStr != "" {
		category := domain.Category(categoryStr)
		if !category.IsValid() {
			return nil, fmt.Errorf("unknown category: %s", categoryStr)
		}
		req.Category = &category
	}

	return req, nil
}

// ToCalendarFilter формирует клиентский фильтр из query параметров
// kinds - список видов через запятую; jobId/itemId/vehicleId/userId - scope;
// q - текст приближенного поиска
func ToCalendarFilter(
	kindsStr string,
	jobIDStr string,
	itemIDStr string,
	vehicleIDStr string,
	userIDStr string,
	text string,
) (domain.CalendarFilter, error) {
	filter := domain.CalendarFilter{Text: text}

	// Парсим kinds если указаны
	if kindsStr != "" {
		for _, part := range strings.Split(kindsStr, ",") {
			kind := domain.Kind(strings.TrimSpace(part))
			if !kind.IsValid() {
				return filter, fmt.Errorf("unknown kind: %s", part)
			}
			filter.Kinds = append(filter.Kinds, kind)
		}
	}

	var err error
	if filter.Scope.JobID, err = parseOptionalUUID(jobIDStr); err != nil {
		return filter, fmt.Errorf("invalid jobId: %w", err)
	}
	if filter.Scope.ItemID, err = parseOptionalUUID(itemIDStr); err != nil {
		return filter, fmt.Errorf("invalid itemId: %w", err)
	}
	if filter.Scope.VehicleID, err = parseOptionalUUID(vehicleIDStr); err != nil {
		return filter, fmt.Errorf("invalid vehicleId: %w", err)
	}
	if filter.Scope.UserID, err = parseOptionalUUID(userIDStr); err != nil {
		return filter, fmt.Errorf("invalid userId: %w", err)
	}

	return filter, nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
