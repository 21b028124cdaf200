package get_vehicle_calendar

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
	msgInvalidVehicleID = "некорректный ID транспорта"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service CalendarService
	cache   *querycache.Cache[models.QueryKey, []models.CalendarRecord]
	logger  Logger
}

// NewHandler создает новый handler календаря транспорта
// cache может быть nil - тогда каждый запрос идет в сервис
func NewHandler(service CalendarService, cache *querycache.Cache[models.QueryKey, []models.CalendarRecord], logger Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/vehicles/{vehicleId}/calendar
// Query params: from, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := uuid.Parse(vars["companyId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/vehicles/{id}/calendar - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/vehicles/{id}/calendar - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(companyID, vehicleID, query.Get("from"), query.Get("limit"), query.Get("offset"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/vehicles/{id}/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	key := serviceReq.CacheKey()
	records, cached := h.lookupCache(key)
	if !cached {
		records, err = h.service.VehicleEvents(r.Context(), serviceReq)
		if err != nil {
			h.logger.Error("GET /companies/{id}/vehicles/{id}/calendar - Failed to get calendar: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.storeCache(key, records)
	}

	h.logger.Info("GET /companies/{id}/vehicles/{id}/calendar - Calendar retrieved: vehicle_id=%s, count=%d, cached=%t",
		vehicleID, len(records), cached)
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
