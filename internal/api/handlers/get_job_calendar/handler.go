package get_job_calendar

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
	msgInvalidJobID     = "некорректный ID работы"
)

type Handler struct {
	service CalendarService
	cache   *querycache.Cache[models.QueryKey, []models.CalendarRecord]
	logger  Logger
}

// NewHandler создает новый handler календаря работы
// cache может быть nil - тогда каждый запрос идет в сервис
func NewHandler(service CalendarService, cache *querycache.Cache[models.QueryKey, []models.CalendarRecord], logger Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/jobs/{jobId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := uuid.Parse(vars["companyId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/jobs/{id}/calendar - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	jobID, err := uuid.Parse(vars["jobId"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/jobs/{id}/calendar - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	serviceReq := &models.JobEventsRequest{
		CompanyID: companyID,
		JobID:     jobID,
	}

	key := serviceReq.CacheKey()
	records, cached := h.lookupCache(key)
	if !cached {
		records, err = h.service.JobEvents(r.Context(), serviceReq)
		if err != nil {
			h.logger.Error("GET /companies/{id}/jobs/{id}/calendar - Failed to get calendar: job_id=%s, error=%v",
				jobID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.storeCache(key, records)
	}

	h.logger.Info("GET /companies/{id}/jobs/{id}/calendar - Calendar retrieved: job_id=%s, count=%d, cached=%t",
		jobID, len(records), cached)
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
