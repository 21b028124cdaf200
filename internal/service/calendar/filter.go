package calendar

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/fuzzymatch"
)

// fuzzyTextThreshold порог приближенного текстового поиска
// Значение ниже делает поиск мягче
const fuzzyTextThreshold = 0.3

// textExtractors поля записи, по которым идет текстовый поиск
var textExtractors = []fuzzymatch.Extractor[models.CalendarRecord]{
	func(r models.CalendarRecord) string { return r.Title },
	func(r models.CalendarRecord) string {
		if r.JobTitle == nil {
			return ""
		}
		return *r.JobTitle
	},
	func(r models.CalendarRecord) string {
		if r.ProjectLead == nil {
			return ""
		}
		return r.ProjectLead.DisplayName
	},
}

// ApplyFilter применяет клиентский фильтр к уже нормализованному списку записей
// Чистая функция: вход не модифицируется, побочных эффектов нет.
// Сначала точные предикаты (вид записи и scope), затем приближенный
// текстовый поиск. Пустой (после trim) текст не меняет ни состав,
// ни порядок; непустой переупорядочивает выживших по качеству совпадения
func ApplyFilter(records []models.CalendarRecord, filter domain.CalendarFilter) []models.CalendarRecord {
	result := make([]models.CalendarRecord, 0, len(records))
	for _, record := range records {
		if !matchesKinds(record, filter.Kinds) {
			continue
		}
		if !matchesScope(record, filter.Scope) {
			continue
		}
		result = append(result, record)
	}

	text := strings.TrimSpace(filter.Text)
	if text == "" {
		return result
	}

	return fuzzymatch.Filter(result, text, textExtractors, fuzzyTextThreshold)
}

// matchesKinds проверяет, что вид записи входит в разрешенный набор
// Пустой набор означает "без ограничения"
func matchesKinds(record models.CalendarRecord, kinds []domain.Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, kind := range kinds {
		if record.Kind == kind {
			return true
		}
	}
	return false
}

// matchesScope проверяет точное совпадение записей со scope фильтра
// Незаполненное опциональное поле ссылки проваливает свой предикат
func matchesScope(record models.CalendarRecord, scope domain.Scope) bool {
	if scope.JobID != nil && !equalsID(record.Ref.JobID, *scope.JobID) {
		return false
	}
	if scope.VehicleID != nil && !equalsID(record.Ref.VehicleID, *scope.VehicleID) {
		return false
	}
	if scope.UserID != nil && !equalsID(record.Ref.UserID, *scope.UserID) {
		return false
	}
	if scope.ItemID != nil && !matchesItem(record.Ref, *scope.ItemID) {
		return false
	}
	return true
}

// matchesItem проверяет вхождение оборудования с учетом двойного
// представления ссылки: одиночный ItemID либо срез ItemIDs
func matchesItem(ref models.Ref, itemID uuid.UUID) bool {
	if equalsID(ref.ItemID, itemID) {
		return true
	}
	for _, id := range ref.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

func equalsID(id *uuid.UUID, target uuid.UUID) bool {
	return id != nil && *id == target
}
