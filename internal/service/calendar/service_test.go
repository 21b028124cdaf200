package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// Фейки репозиториев со счетчиками вызовов

type fakePeriodRepo struct {
	listFn    func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error)
	listCalls int
	lastList  domain.PeriodFilter
}

func (f *fakePeriodRepo) List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
	f.listCalls++
	f.lastList = filter
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []*domain.Period{}, nil
}

type fakeReservationRepo struct {
	periodIDsByVehicleFn func(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error)
	periodIDsByItemFn    func(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error)
	periodIDsByUserFn    func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	vehicleLinks map[uuid.UUID]uuid.UUID
	itemLinks    map[uuid.UUID][]uuid.UUID
	userLinks    map[uuid.UUID]uuid.UUID
	linksErr     error
}

func (f *fakeReservationRepo) PeriodIDsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error) {
	if f.periodIDsByVehicleFn != nil {
		return f.periodIDsByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

func (f *fakeReservationRepo) PeriodIDsByItem(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	if f.periodIDsByItemFn != nil {
		return f.periodIDsByItemFn(ctx, itemID)
	}
	return nil, nil
}

func (f *fakeReservationRepo) PeriodIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if f.periodIDsByUserFn != nil {
		return f.periodIDsByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeReservationRepo) VehicleLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.vehicleLinks, nil
}

func (f *fakeReservationRepo) ItemLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.itemLinks, nil
}

func (f *fakeReservationRepo) UserLinksByPeriods(ctx context.Context, periodIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.userLinks, nil
}

type fakeJobRepo struct {
	titles map[uuid.UUID]string
	infos  map[uuid.UUID]domain.JobInfo
	err    error
}

func (f *fakeJobRepo) TitlesByIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.titles == nil {
		return map[uuid.UUID]string{}, nil
	}
	return f.titles, nil
}

func (f *fakeJobRepo) InfoWithLeadByIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]domain.JobInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.infos == nil {
		return map[uuid.UUID]domain.JobInfo{}, nil
	}
	return f.infos, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(periods *fakePeriodRepo, reservations *fakeReservationRepo, jobs *fakeJobRepo) *Service {
	if periods == nil {
		periods = &fakePeriodRepo{}
	}
	if reservations == nil {
		reservations = &fakeReservationRepo{}
	}
	if jobs == nil {
		jobs = &fakeJobRepo{}
	}
	return NewService(periods, reservations, jobs, noopLogger{})
}

func testPeriod(companyID uuid.UUID, category domain.Category) *domain.Period {
	return &domain.Period{
		ID:        uuid.New(),
		CompanyID: companyID,
		StartAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Category:  category,
	}
}

// Транспорт без единой связки: периоды не запрашиваются вовсе

func TestVehicleEventsNoReservationsSkipsPeriodFetch(t *testing.T) {
	periods := &fakePeriodRepo{}
	reservations := &fakeReservationRepo{
		periodIDsByVehicleFn: func(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{}, nil
		},
	}
	svc := newTestService(periods, reservations, nil)

	got, err := svc.VehicleEvents(context.Background(), &models.VehicleEventsRequest{
		CompanyID: uuid.New(),
		VehicleID: uuid.New(),
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, periods.listCalls)
}

func TestVehicleEventsFilterAndRef(t *testing.T) {
	companyID := uuid.New()
	vehicleID := uuid.New()
	jobID := uuid.New()
	periodID := uuid.New()
	from := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	period := testPeriod(companyID, domain.CategoryTransport)
	period.ID = periodID
	period.JobID = ptr.Ptr(jobID)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{period}, nil
		},
	}
	reservations := &fakeReservationRepo{
		periodIDsByVehicleFn: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{periodID}, nil
		},
	}
	jobs := &fakeJobRepo{titles: map[uuid.UUID]string{jobID: "Summer tour"}}
	svc := newTestService(periods, reservations, jobs)

	got, err := svc.VehicleEvents(context.Background(), &models.VehicleEventsRequest{
		CompanyID: companyID,
		VehicleID: vehicleID,
		From:      ptr.Ptr(from),
		Limit:     ptr.Ptr(uint64(10)),
		Offset:    ptr.Ptr(uint64(20)),
	})

	require.NoError(t, err)

	// Фильтр периодов: найденные связки, категория transport,
	// нижняя граница и пагинация прокинуты как есть
	assert.Equal(t, companyID, periods.lastList.CompanyID)
	assert.Equal(t, []uuid.UUID{periodID}, periods.lastList.IDs)
	require.NotNil(t, periods.lastList.Category)
	assert.Equal(t, domain.CategoryTransport, *periods.lastList.Category)
	require.NotNil(t, periods.lastList.From)
	assert.Equal(t, from, *periods.lastList.From)
	require.NotNil(t, periods.lastList.Limit)
	assert.Equal(t, uint64(10), *periods.lastList.Limit)
	require.NotNil(t, periods.lastList.Offset)
	assert.Equal(t, uint64(20), *periods.lastList.Offset)

	require.Len(t, got, 1)
	record := got[0]
	assert.Equal(t, domain.KindVehicle, record.Kind)
	require.NotNil(t, record.Ref.VehicleID)
	assert.Equal(t, vehicleID, *record.Ref.VehicleID)
	require.NotNil(t, record.Ref.JobID)
	assert.Equal(t, jobID, *record.Ref.JobID)
	require.NotNil(t, record.JobTitle)
	assert.Equal(t, "Summer tour", *record.JobTitle)
	// Заголовок отсутствует: подставляется fallback варианта запроса
	assert.Equal(t, domain.FallbackTitleTransport, record.Title)
}

func TestItemEventsNoReservations(t *testing.T) {
	periods := &fakePeriodRepo{}
	reservations := &fakeReservationRepo{
		periodIDsByItemFn: func(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
			return nil, nil
		},
	}
	svc := newTestService(periods, reservations, nil)

	got, err := svc.ItemEvents(context.Background(), &models.ItemEventsRequest{
		CompanyID: uuid.New(),
		ItemID:    uuid.New(),
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, periods.listCalls)
}

func TestItemEventsFallbackTitle(t *testing.T) {
	companyID := uuid.New()
	itemID := uuid.New()
	period := testPeriod(companyID, domain.CategoryEquipment)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{period}, nil
		},
	}
	reservations := &fakeReservationRepo{
		periodIDsByItemFn: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{period.ID}, nil
		},
	}
	svc := newTestService(periods, reservations, nil)

	got, err := svc.ItemEvents(context.Background(), &models.ItemEventsRequest{
		CompanyID: companyID,
		ItemID:    itemID,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.KindItem, got[0].Kind)
	assert.Equal(t, domain.FallbackTitleEquipment, got[0].Title)
	require.NotNil(t, got[0].Ref.ItemID)
	assert.Equal(t, itemID, *got[0].Ref.ItemID)
}

func TestCrewEventsFallbackTitle(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	period := testPeriod(companyID, domain.CategoryCrew)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{period}, nil
		},
	}
	reservations := &fakeReservationRepo{
		periodIDsByUserFn: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{period.ID}, nil
		},
	}
	svc := newTestService(periods, reservations, nil)

	got, err := svc.CrewEvents(context.Background(), &models.CrewEventsRequest{
		CompanyID: companyID,
		UserID:    userID,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.KindCrew, got[0].Kind)
	assert.Equal(t, domain.FallbackTitleCrew, got[0].Title)
	require.NotNil(t, got[0].Ref.UserID)
	assert.Equal(t, userID, *got[0].Ref.UserID)
}

func TestJobEventsFilterAndFallback(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()
	period := testPeriod(companyID, domain.CategoryProgram)
	period.JobID = ptr.Ptr(jobID)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{period}, nil
		},
	}
	svc := newTestService(periods, nil, &fakeJobRepo{titles: map[uuid.UUID]string{jobID: "Festival"}})

	got, err := svc.JobEvents(context.Background(), &models.JobEventsRequest{
		CompanyID: companyID,
		JobID:     jobID,
	})

	require.NoError(t, err)
	require.NotNil(t, periods.lastList.JobID)
	assert.Equal(t, jobID, *periods.lastList.JobID)

	require.Len(t, got, 1)
	assert.Equal(t, domain.KindJob, got[0].Kind)
	assert.Equal(t, domain.FallbackTitleProgram, got[0].Title)
	require.NotNil(t, got[0].JobTitle)
	assert.Equal(t, "Festival", *got[0].JobTitle)
}

// Календарь компании: вид записи и ссылка разрешаются через таблицы-связки

func TestCompanyEventsResolvesKindsAndRefs(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()
	vehicleID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()
	userID := uuid.New()
	leadID := uuid.New()

	transport := testPeriod(companyID, domain.CategoryTransport)
	equipment := testPeriod(companyID, domain.CategoryEquipment)
	crew := testPeriod(companyID, domain.CategoryCrew)
	program := testPeriod(companyID, domain.CategoryProgram)
	program.JobID = ptr.Ptr(jobID)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{transport, equipment, crew, program}, nil
		},
	}
	reservations := &fakeReservationRepo{
		vehicleLinks: map[uuid.UUID]uuid.UUID{transport.ID: vehicleID},
		itemLinks:    map[uuid.UUID][]uuid.UUID{equipment.ID: {itemA, itemB}},
		userLinks:    map[uuid.UUID]uuid.UUID{crew.ID: userID},
	}
	jobs := &fakeJobRepo{
		infos: map[uuid.UUID]domain.JobInfo{
			jobID: {
				ID:    jobID,
				Title: "Festival",
				Lead:  &domain.Profile{ID: leadID, DisplayName: "Maria Petrova"},
			},
		},
	}
	svc := newTestService(periods, reservations, jobs)

	got, err := svc.CompanyEvents(context.Background(), &models.CompanyEventsRequest{CompanyID: companyID})

	require.NoError(t, err)
	require.Len(t, got, 4)

	byID := make(map[uuid.UUID]models.CalendarRecord, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}

	vehicleRecord := byID[transport.ID]
	assert.Equal(t, domain.KindVehicle, vehicleRecord.Kind)
	require.NotNil(t, vehicleRecord.Ref.VehicleID)
	assert.Equal(t, vehicleID, *vehicleRecord.Ref.VehicleID)
	assert.Equal(t, domain.FallbackTitleEvent, vehicleRecord.Title)

	// Несколько единиц оборудования: ItemID указывает на первую,
	// полный состав дублируется в ItemIDs
	itemRecord := byID[equipment.ID]
	assert.Equal(t, domain.KindItem, itemRecord.Kind)
	require.NotNil(t, itemRecord.Ref.ItemID)
	assert.Equal(t, itemA, *itemRecord.Ref.ItemID)
	assert.Equal(t, []uuid.UUID{itemA, itemB}, itemRecord.Ref.ItemIDs)

	crewRecord := byID[crew.ID]
	assert.Equal(t, domain.KindCrew, crewRecord.Kind)
	require.NotNil(t, crewRecord.Ref.UserID)
	assert.Equal(t, userID, *crewRecord.Ref.UserID)

	jobRecord := byID[program.ID]
	assert.Equal(t, domain.KindJob, jobRecord.Kind)
	require.NotNil(t, jobRecord.Ref.JobID)
	assert.Equal(t, jobID, *jobRecord.Ref.JobID)
	require.NotNil(t, jobRecord.JobTitle)
	assert.Equal(t, "Festival", *jobRecord.JobTitle)
	require.NotNil(t, jobRecord.ProjectLead)
	assert.Equal(t, leadID, jobRecord.ProjectLead.ID)
	assert.Equal(t, "Maria Petrova", jobRecord.ProjectLead.DisplayName)
}

// Период-сирота: связки нет, ссылка остается неразрешенной

func TestCompanyEventsOrphanPeriodKeepsEmptyRef(t *testing.T) {
	companyID := uuid.New()
	orphan := testPeriod(companyID, domain.CategoryTransport)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{orphan}, nil
		},
	}
	svc := newTestService(periods, &fakeReservationRepo{}, nil)

	got, err := svc.CompanyEvents(context.Background(), &models.CompanyEventsRequest{CompanyID: companyID})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.KindVehicle, got[0].Kind)
	assert.Nil(t, got[0].Ref.VehicleID)
	assert.Nil(t, got[0].Ref.JobID)
}

func TestCompanyEventsCategoryFilterPassedThrough(t *testing.T) {
	companyID := uuid.New()
	periods := &fakePeriodRepo{}
	svc := newTestService(periods, nil, nil)

	_, err := svc.CompanyEvents(context.Background(), &models.CompanyEventsRequest{
		CompanyID: companyID,
		Category:  ptr.Ptr(domain.CategoryCrew),
	})

	require.NoError(t, err)
	require.NotNil(t, periods.lastList.Category)
	assert.Equal(t, domain.CategoryCrew, *periods.lastList.Category)
	assert.Nil(t, periods.lastList.IDs)
}

// Ошибки бэкенда отдаются наверх без повторов и деградации

func TestCompanyEventsLinkErrorPropagates(t *testing.T) {
	companyID := uuid.New()
	period := testPeriod(companyID, domain.CategoryCrew)

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{period}, nil
		},
	}
	reservations := &fakeReservationRepo{linksErr: errors.New("connection reset")}
	svc := newTestService(periods, reservations, nil)

	got, err := svc.CompanyEvents(context.Background(), &models.CompanyEventsRequest{CompanyID: companyID})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, got)
}

func TestVehicleEventsReservationErrorPropagates(t *testing.T) {
	reservations := &fakeReservationRepo{
		periodIDsByVehicleFn: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			return nil, errors.New("connection reset")
		},
	}
	periods := &fakePeriodRepo{}
	svc := newTestService(periods, reservations, nil)

	got, err := svc.VehicleEvents(context.Background(), &models.VehicleEventsRequest{
		CompanyID: uuid.New(),
		VehicleID: uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, got)
	assert.Equal(t, 0, periods.listCalls)
}

func TestPeriodTitlePreferredOverFallback(t *testing.T) {
	companyID := uuid.New()
	period := testPeriod(companyID, domain.CategoryProgram)
	period.Title = ptr.Ptr("Opening night")

	periods := &fakePeriodRepo{
		listFn: func(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
			return []*domain.Period{period}, nil
		},
	}
	svc := newTestService(periods, nil, nil)

	got, err := svc.JobEvents(context.Background(), &models.JobEventsRequest{
		CompanyID: companyID,
		JobID:     uuid.New(),
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Opening night", got[0].Title)
}
