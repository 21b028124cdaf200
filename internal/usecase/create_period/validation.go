package create_period

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// validateRequest проверяет входные данные запроса на создание периода
func validateRequest(req *Request) error {
	if !req.Category.IsValid() {
		return ErrInvalidCategory
	}

	if req.StartAt.IsZero() {
		return ErrMissingStartAt
	}

	if req.EndAt != nil && !req.EndAt.After(req.StartAt) {
		return ErrInvalidTimeRange
	}

	if req.Title != nil && len(*req.Title) > domain.MaxTitleLength {
		return ErrTitleTooLong
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return ErrNotesTooLong
	}

	return validateLinks(req)
}

// validateLinks проверяет, что переданные связки соответствуют категории
// Отсутствие связки допустимо для любой категории
func validateLinks(req *Request) error {
	if req.VehicleID != nil && req.Category != domain.CategoryTransport {
		return ErrLinkMismatch
	}
	if len(req.ItemIDs) > 0 && req.Category != domain.CategoryEquipment {
		return ErrLinkMismatch
	}
	if req.UserID != nil && req.Category != domain.CategoryCrew {
		return ErrLinkMismatch
	}
	return nil
}
