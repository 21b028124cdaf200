package get_item_calendar

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/querycache"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidItemID    = "некорректный ID оборудования"
)

type Handler struct {
	service CalendarService
	cache   *querycache.Cache[models.QueryKey, []models.CalendarRecord]
	logger  Logger
}

// NewHandler создает новый handler календаря оборудования
// cache может быть nil - тогда каждый запрос идет в сервис
func NewHandler(service CalendarService, cache *querycache.Cache[models.QueryKey, []models.CalendarRecord], logger Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/items/{itemId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := uuid.Parse(vars["companyId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/items/{id}/calendar - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	itemID, err := uuid.Parse(vars["itemId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/items/{id}/calendar - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	serviceReq := &models.ItemEventsRequest{
		CompanyID: companyID,
		ItemID:    itemID,
	}

	key := serviceReq.CacheKey()
	records, cached := h.lookupCache(key)
	if !cached {
		records, err = h.service.ItemEvents(r.Context(), serviceReq)
		if err != nil {
			h.logger.Error("GET /companies/{id}/items/{id}/calendar - Failed to get calendar: item_id=%s, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.storeCache(key, records)
	}

	h.logger.Info("GET /companies/{id}/items/{id}/calendar - Calendar retrieved: item_id=%s, count=%d, cached=%t",
		itemID, len(records), cached)
	handlers.RespondJSON(w, http.StatusOK, models.CalendarListResponse{Records: records})
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
