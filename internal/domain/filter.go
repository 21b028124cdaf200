package domain

import "github.com/google/uuid"

// Scope ограничивает выборку календаря одной конкретной сущностью
type Scope struct {
	JobID     *uuid.UUID
	ItemID    *uuid.UUID
	VehicleID *uuid.UUID
	UserID    *uuid.UUID
}

// IsEmpty возвращает true, если ни одно поле scope не задано
func (s Scope) IsEmpty() bool {
	return s.JobID == nil && s.ItemID == nil && s.VehicleID == nil && s.UserID == nil
}

// CalendarFilter клиентский фильтр по уже загруженному списку записей календаря
// Не персистентный, собирается и отбрасывается на каждый запрос
type CalendarFilter struct {
	Kinds []Kind // Разрешенные типы записей (nil/пустой - без ограничения)
	Scope Scope  // Ограничение одной сущностью
	Text  string // Свободный текстовый запрос (приближенный поиск)
}
