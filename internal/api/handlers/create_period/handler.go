package create_period

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	createPeriodUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_period"
	"github.com/m04kA/SMC-CalendarService/pkg/querycache"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreatePeriodUseCase
	cache   *querycache.Cache[models.QueryKey, []models.CalendarRecord]
	logger  Logger
}

// NewHandler создает новый handler создания периода
// cache может быть nil; непустой кэш календаря сбрасывается после записи
func NewHandler(useCase CreatePeriodUseCase, cache *querycache.Cache[models.QueryKey, []models.CalendarRecord], logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		cache:   cache,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := uuid.Parse(vars["companyId"])
	if err != nil {
		h.logger.Warn("POST /companies/{id}/periods - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var body CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /companies/{id}/periods - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), body.ToUseCaseRequest(companyID))
	if err != nil {
		switch {
		case errors.Is(err, createPeriodUC.ErrInvalidCategory),
			errors.Is(err, createPeriodUC.ErrMissingStartAt),
			errors.Is(err, createPeriodUC.ErrInvalidTimeRange),
			errors.Is(err, createPeriodUC.ErrTitleTooLong),
			errors.Is(err, createPeriodUC.ErrNotesTooLong),
			errors.Is(err, createPeriodUC.ErrLinkMismatch):
			h.logger.Warn("POST /companies/{id}/periods - Validation failed: company_id=%s, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /companies/{id}/periods - Failed to create period: company_id=%s, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Записанный период делает закэшированные календари неактуальными
	if h.cache != nil {
		h.cache.Purge()
	}

	h.logger.Info("POST /companies/{id}/periods - Period created: company_id=%s, period_id=%s",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
