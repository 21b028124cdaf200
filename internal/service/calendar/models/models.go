package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модели

// CompanyEventsRequest запрос календаря всей компании
type CompanyEventsRequest struct {
	CompanyID uuid.UUID
	Category  *domain.Category // Фильтр по категории (опционально)
}

// VehicleEventsRequest запрос календаря одной единицы транспорта
// Единственный вариант запроса с нижней границей по дате и пагинацией
type VehicleEventsRequest struct {
	CompanyID uuid.UUID
	VehicleID uuid.UUID
	From      *time.Time // Нижняя граница start_at, включительно (опционально)
	Limit     *uint64    // Пагинация (опционально, вместе с Offset)
	Offset    *uint64
}

// ItemEventsRequest запрос календаря одной единицы оборудования
type ItemEventsRequest struct {
	CompanyID uuid.UUID
	ItemID    uuid.UUID
}

// CrewEventsRequest запрос календаря одного сотрудника
type CrewEventsRequest struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
}

// JobEventsRequest запрос календаря одной работы
type JobEventsRequest struct {
	CompanyID uuid.UUID
	JobID     uuid.UUID
}

// Response модели

// Lead профиль руководителя проекта
type Lead struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       *string   `json:"email,omitempty"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
}

// Ref типизированная ссылка записи календаря на объект предметной области
// Кроме JobID заполняется не более одного поля;
// ItemIDs - историческое дублирование для периодов с несколькими единицами оборудования
type Ref struct {
	JobID     *uuid.UUID  `json:"jobId,omitempty"`
	ItemID    *uuid.UUID  `json:"itemId,omitempty"`
	ItemIDs   []uuid.UUID `json:"itemIds,omitempty"`
	VehicleID *uuid.UUID  `json:"vehicleId,omitempty"`
	UserID    *uuid.UUID  `json:"userId,omitempty"`
}

// CalendarRecord нормализованная запись календаря
// Производная проекция периода, не персистится
type CalendarRecord struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	StartAt     time.Time       `json:"startAt"`
	EndAt       *time.Time      `json:"endAt,omitempty"`
	Kind        domain.Kind     `json:"kind"`
	Ref         Ref             `json:"ref"`
	Status      *string         `json:"status,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Meta        *string         `json:"meta,omitempty"`
	ProjectLead *Lead           `json:"projectLead,omitempty"`
	Category    domain.Category `json:"category"`
	JobTitle    *string         `json:"jobTitle,omitempty"`
}

// CalendarListResponse ответ со списком записей календаря
type CalendarListResponse struct {
	Records []CalendarRecord `json:"records"`
}

// Методы конвертации

// FromPeriod нормализует период в запись календаря
// Чистое отображение без I/O: заголовок берется из периода
// или подменяется fallback строкой варианта запроса
func FromPeriod(p *domain.Period, kind domain.Kind, ref Ref, fallbackTitle string, jobTitle *string, lead *domain.Profile) CalendarRecord {
	record := CalendarRecord{
		ID:       p.ID,
		Title:    p.DisplayTitle(fallbackTitle),
		StartAt:  p.StartAt,
		EndAt:    p.EndAt,
		Kind:     kind,
		Ref:      ref,
		Notes:    p.Notes,
		Location: p.Location,
		Meta:     p.Meta,
		Category: p.Category,
		JobTitle: jobTitle,
	}

	if lead != nil {
		record.ProjectLead = &Lead{
			ID:          lead.ID,
			DisplayName: lead.DisplayName,
			Email:       lead.Email,
			AvatarURL:   lead.AvatarURL,
		}
	}

	return record
}
