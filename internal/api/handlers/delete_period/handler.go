package delete_period

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/internal/service/periods"
	"github.com/m04kA/SMC-CalendarService/pkg/querycache"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidPeriodID  = "некорректный ID периода"
	msgPeriodNotFound   = "период не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service PeriodService
	cache   *querycache.Cache[models.QueryKey, []models.CalendarRecord]
	logger  Logger
}

// NewHandler создает новый handler удаления периода
// cache может быть nil; непустой кэш календаря сбрасывается после записи
func NewHandler(service PeriodService, cache *querycache.Cache[models.QueryKey, []models.CalendarRecord], logger Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/companies/{companyId}/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := uuid.Parse(vars["companyId"])
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/periods/{id} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	periodID, err := uuid.Parse(vars["periodId"])
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/periods/{id} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	if err := h.service.Delete(r.Context(), periodID, companyID); err != nil {
		switch {
		case errors.Is(err, periods.ErrPeriodNotFound):
			h.logger.Warn("DELETE /companies/{id}/periods/{id} - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgPeriodNotFound)

		case errors.Is(err, periods.ErrAccessDenied):
			h.logger.Warn("DELETE /companies/{id}/periods/{id} - Access denied: period_id=%s, company_id=%s",
				periodID, companyID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /companies/{id}/periods/{id} - Failed to delete period: period_id=%s, error=%v",
				periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Удаленный период делает закэшированные календари неактуальными
	if h.cache != nil {
		h.cache.Purge()
	}

	h.logger.Info("DELETE /companies/{id}/periods/{id} - Period deleted: period_id=%s", periodID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
