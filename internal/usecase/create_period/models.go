package create_period

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на создание периода
// Связки опциональны: период без связки допустим и отдается календарем
// с неразрешенной ссылкой
type Request struct {
	CompanyID uuid.UUID
	JobID     *uuid.UUID
	Title     *string
	StartAt   time.Time
	EndAt     *time.Time
	Category  domain.Category
	Notes     *string
	Location  *string
	Meta      *string

	// Связки с сущностями, по виду категории
	VehicleID *uuid.UUID  // только для category = transport
	ItemIDs   []uuid.UUID // только для category = equipment
	UserID    *uuid.UUID  // только для category = crew
}

// Response модель ответа с созданным периодом
type Response struct {
	ID        uuid.UUID       `json:"id"`
	CompanyID uuid.UUID       `json:"companyId"`
	JobID     *uuid.UUID      `json:"jobId,omitempty"`
	Title     *string         `json:"title,omitempty"`
	StartAt   time.Time       `json:"startAt"`
	EndAt     *time.Time      `json:"endAt,omitempty"`
	Category  domain.Category `json:"category"`
	Notes     *string         `json:"notes,omitempty"`
	Location  *string         `json:"location,omitempty"`
	Meta      *string         `json:"meta,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// fromDomainPeriod конвертирует domain модель в DTO ответа
func fromDomainPeriod(p *domain.Period) *Response {
	return &Response{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		JobID:     p.JobID,
		Title:     p.Title,
		StartAt:   p.StartAt,
		EndAt:     p.EndAt,
		Category:  p.Category,
		Notes:     p.Notes,
		Location:  p.Location,
		Meta:      p.Meta,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
