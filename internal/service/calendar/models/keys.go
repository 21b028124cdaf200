package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryKey идентичность формы запроса календаря для кэширования
// Сравнимая структура с производным равенством: любой входной параметр,
// влияющий на результат, обязан быть частью ключа
type QueryKey struct {
	Scope     string
	CompanyID uuid.UUID
	EntityID  uuid.UUID // Нулевой для запроса всей компании
	Category  string
	From      string // RFC3339 или пустая строка
	Limit     int64  // -1, когда пагинация не запрошена
	Offset    int64
}

const (
	scopeCompany = "company"
	scopeVehicle = "vehicle"
	scopeItem    = "item"
	scopeCrew    = "crew"
	scopeJob     = "job"
)

// CacheKey возвращает ключ кэша для запроса календаря компании
func (r *CompanyEventsRequest) CacheKey() QueryKey {
	key := QueryKey{
		Scope:     scopeCompany,
		CompanyID: r.CompanyID,
		Limit:     -1,
		Offset:    -1,
	}
	if r.Category != nil {
		key.Category = string(*r.Category)
	}
	return key
}

// CacheKey возвращает ключ кэша для запроса календаря транспорта
func (r *VehicleEventsRequest) CacheKey() QueryKey {
	key := QueryKey{
		Scope:     scopeVehicle,
		CompanyID: r.CompanyID,
		EntityID:  r.VehicleID,
		Limit:     -1,
		Offset:    -1,
	}
	if r.From != nil {
		key.From = r.From.Format(time.RFC3339)
	}
	if r.Limit != nil {
		key.Limit = int64(*r.Limit)
	}
	if r.Offset != nil {
		key.Offset = int64(*r.Offset)
	}
	return key
}

// CacheKey возвращает ключ кэша для запроса календаря оборудования
func (r *ItemEventsRequest) CacheKey() QueryKey {
	return QueryKey{
		Scope:     scopeItem,
		CompanyID: r.CompanyID,
		EntityID:  r.ItemID,
		Limit:     -1,
		Offset:    -1,
	}
}

// CacheKey возвращает ключ кэша для запроса календаря сотрудника
func (r *CrewEventsRequest) CacheKey() QueryKey {
	return QueryKey{
		Scope:     scopeCrew,
		CompanyID: r.CompanyID,
		EntityID:  r.UserID,
		Limit:     -1,
		Offset:    -1,
	}
}

// CacheKey возвращает ключ кэша для запроса календаря работы
func (r *JobEventsRequest) CacheKey() QueryKey {
	return QueryKey{
		Scope:     scopeJob,
		CompanyID: r.CompanyID,
		EntityID:  r.JobID,
		Limit:     -1,
		Offset:    -1,
	}
}
