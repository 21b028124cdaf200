package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the scheduling category of a booking period
type Category string

const (
	CategoryProgram   Category = "program"
	CategoryEquipment Category = "equipment"
	CategoryCrew      Category = "crew"
	CategoryTransport Category = "transport"
)

// IsValid returns true if the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryProgram, CategoryEquipment, CategoryCrew, CategoryTransport:
		return true
	}
	return false
}

// Period represents a span of time reserved for one purpose in the company schedule
type Period struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	JobID     *uuid.UUID
	Title     *string
	StartAt   time.Time
	EndAt     *time.Time
	Category  Category
	Notes     *string
	Location  *string
	Meta      *string
	Deleted   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasJob returns true if the period belongs to a job
func (p *Period) HasJob() bool {
	return p.JobID != nil
}

// DisplayTitle returns the period title or the given fallback when the title is missing or empty
func (p *Period) DisplayTitle(fallback string) string {
	if p.Title == nil || *p.Title == "" {
		return fallback
	}
	return *p.Title
}

// PeriodFilter фильтр для выборки периодов
// Удаленные периоды (deleted = true) исключаются всегда,
// сортировка всегда по start_at по возрастанию
type PeriodFilter struct {
	CompanyID uuid.UUID   // Обязательный параметр
	IDs       []uuid.UUID // Явный набор идентификаторов (nil - без ограничения)
	Category  *Category   // Фильтр по категории (опционально)
	JobID     *uuid.UUID  // Фильтр по работе (опционально)
	From      *time.Time  // Нижняя граница start_at, включительно (опционально)
	Limit     *uint64     // Пагинация (опционально, вместе с Offset)
	Offset    *uint64
}
