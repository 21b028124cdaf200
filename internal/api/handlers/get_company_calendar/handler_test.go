package get_company_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/querycache"
)

type fakeCalendarService struct {
	records []models.CalendarRecord
	calls   int
	lastReq *models.CompanyEventsRequest
}

func (f *fakeCalendarService) CompanyEvents(ctx context.Context, req *models.CompanyEventsRequest) ([]models.CalendarRecord, error) {
	f.calls++
	f.lastReq = req
	return f.records, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func serveCalendar(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/companies/{companyId}/calendar", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleReturnsRecords(t *testing.T) {
	companyID := uuid.New()
	service := &fakeCalendarService{
		records: []models.CalendarRecord{
			{ID: uuid.New(), Title: "Opening night", Kind: domain.KindJob},
		},
	}
	h := NewHandler(service, nil, noopLogger{})

	rec := serveCalendar(h, "/api/v1/companies/"+companyID.String()+"/calendar")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CalendarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Opening night", resp.Records[0].Title)
	assert.Equal(t, companyID, service.lastReq.CompanyID)
}

func TestHandleInvalidCompanyID(t *testing.T) {
	h := NewHandler(&fakeCalendarService{}, nil, noopLogger{})

	rec := serveCalendar(h, "/api/v1/companies/not-a-uuid/calendar")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownCategory(t *testing.T) {
	h := NewHandler(&fakeCalendarService{}, nil, noopLogger{})

	rec := serveCalendar(h, "/api/v1/companies/"+uuid.NewString()+"/calendar?category=festival")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownKind(t *testing.T) {
	h := NewHandler(&fakeCalendarService{}, nil, noopLogger{})

	rec := serveCalendar(h, "/api/v1/companies/"+uuid.NewString()+"/calendar?kinds=vehicle,festival")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Повторный запрос с теми же параметрами обслуживается из кэша

func TestHandleCachesUnfilteredResult(t *testing.T) {
	companyID := uuid.New()
	service := &fakeCalendarService{
		records: []models.CalendarRecord{
			{ID: uuid.New(), Title: "Concert rigging", Kind: domain.KindJob},
			{ID: uuid.New(), Title: "Maintenance day", Kind: domain.KindJob},
		},
	}
	cache := querycache.New[models.QueryKey, []models.CalendarRecord](16, time.Minute)
	h := NewHandler(service, cache, noopLogger{})

	base := "/api/v1/companies/" + companyID.String() + "/calendar"

	first := serveCalendar(h, base)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, service.calls)

	second := serveCalendar(h, base)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, service.calls)

	// Фильтр не входит в ключ кэша и применяется к каждому ответу заново
	filtered := serveCalendar(h, base+"?q=concert")
	require.Equal(t, http.StatusOK, filtered.Code)
	assert.Equal(t, 1, service.calls)

	var resp models.CalendarListResponse
	require.NoError(t, json.Unmarshal(filtered.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Concert rigging", resp.Records[0].Title)
}

// Разная категория означает разный ключ кэша

func TestHandleCategoryPartOfCacheKey(t *testing.T) {
	companyID := uuid.New()
	service := &fakeCalendarService{}
	cache := querycache.New[models.QueryKey, []models.CalendarRecord](16, time.Minute)
	h := NewHandler(service, cache, noopLogger{})

	base := "/api/v1/companies/" + companyID.String() + "/calendar"

	serveCalendar(h, base)
	serveCalendar(h, base+"?category=crew")

	assert.Equal(t, 2, service.calls)
}
