package get_company_calendar

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/querycache"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service CalendarService
	cache   *querycache.Cache[models.QueryKey, []models.CalendarRecord]
	logger  Logger
}

// NewHandler создает новый handler календаря компании
// cache может быть nil - тогда каждый запрос идет в сервис
func NewHandler(service CalendarService, cache *querycache.Cache[models.QueryKey, []models.CalendarRecord], logger Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/calendar
// Query params: category (опционально);
// kinds, jobId, itemId, vehicleId, userId, q - клиентский фильтр (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := uuid.Parse(vars["companyId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(companyID, query.Get("category"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	filter, err := ToCalendarFilter(
		query.Get("kinds"),
		query.Get("jobId"),
		query.Get("itemId"),
		query.Get("vehicleId"),
		query.Get("userId"),
		query.Get("q"),
	)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Кэш хранит нефильтрованный результат: фильтр не входит в ключ
	// и применяется к каждому ответу заново
	records, cached := h.lookupCache(serviceReq.CacheKey())
	if !cached {
		records, err = h.service.CompanyEvents(r.Context(), serviceReq)
		if err != nil {
			h.logger.Error("GET /companies/{id}/calendar - Failed to get calendar: company_id=%s, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.storeCache(serviceReq.CacheKey(), records)
	}

	filtered := calendar.ApplyFilter(records, filter)

	h.logger.Info("GET /companies/{id}/calendar - Calendar retrieved: company_id=%s, count=%d, cached=%t",
		companyID, len(filtered), cached)
	handlers.RespondJSON(w, http.StatusOK, models.CalendarListResponse{Records: filtered})
}

func (h *Handler) lookupCache(key models.QueryKey) ([]models.CalendarRecord, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

func (h *Handler) storeCache(key models.QueryKey, records []models.CalendarRecord) {
	if h.cache != nil {
		h.cache.Set(key, records)
	}
}
