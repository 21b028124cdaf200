package create_period

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	createPeriodUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_period"
)

// CreatePeriodRequest тело запроса на создание периода
type CreatePeriodRequest struct {
	JobID    *uuid.UUID `json:"jobId,omitempty"`
	Title    *string    `json:"title,omitempty"`
	StartAt  time.Time  `json:"startAt"`
	EndAt    *time.Time `json:"endAt,omitempty"`
	Category string     `json:"category"`
	Notes    *string    `json:"notes,omitempty"`
	Location *string    `json:"location,omitempty"`
	Meta     *string    `json:"meta,omitempty"`

	VehicleID *uuid.UUID  `json:"vehicleId,omitempty"`
	ItemIDs   []uuid.UUID `json:"itemIds,omitempty"`
	UserID    *uuid.UUID  `json:"userId,omitempty"`
}

// ToUseCaseRequest конвертирует тело запроса в запрос use case
func (r *CreatePeriodRequest) ToUseCaseRequest(companyID uuid.UUID) *createPeriodUC.Request {
	return &createPeriodUC.Request{
		CompanyID: companyID,
		JobID:     r.JobID,
		Title:     r.Title,
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		Category:  domain.Category(r.Category),
		Notes:     r.Notes,
		Location:  r.Location,
		Meta:      r.Meta,
		VehicleID: r.VehicleID,
		ItemIDs:   r.ItemIDs,
		UserID:    r.UserID,
	}
}
