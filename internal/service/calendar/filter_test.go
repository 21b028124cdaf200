package calendar

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

func TestApplyFilterEmptyFilterKeepsEverything(t *testing.T) {
	records := []models.CalendarRecord{
		{ID: uuid.New(), Title: "Monday shift", Kind: domain.KindCrew},
		{ID: uuid.New(), Title: "Crane move", Kind: domain.KindVehicle},
	}

	got := ApplyFilter(records, domain.CalendarFilter{})

	assert.Equal(t, records, got)
}

func TestApplyFilterByKinds(t *testing.T) {
	records := []models.CalendarRecord{
		{ID: uuid.New(), Kind: domain.KindVehicle},
		{ID: uuid.New(), Kind: domain.KindItem},
		{ID: uuid.New(), Kind: domain.KindCrew},
	}

	got := ApplyFilter(records, domain.CalendarFilter{
		Kinds: []domain.Kind{domain.KindVehicle, domain.KindCrew},
	})

	require.Len(t, got, 2)
	assert.Equal(t, domain.KindVehicle, got[0].Kind)
	assert.Equal(t, domain.KindCrew, got[1].Kind)
}

func TestApplyFilterByScope(t *testing.T) {
	jobID := uuid.New()
	vehicleID := uuid.New()
	userID := uuid.New()

	records := []models.CalendarRecord{
		{ID: uuid.New(), Kind: domain.KindVehicle, Ref: models.Ref{JobID: ptr.Ptr(jobID), VehicleID: ptr.Ptr(vehicleID)}},
		{ID: uuid.New(), Kind: domain.KindCrew, Ref: models.Ref{UserID: ptr.Ptr(userID)}},
		{ID: uuid.New(), Kind: domain.KindJob, Ref: models.Ref{JobID: ptr.Ptr(jobID)}},
	}

	t.Run("by job", func(t *testing.T) {
		got := ApplyFilter(records, domain.CalendarFilter{Scope: domain.Scope{JobID: ptr.Ptr(jobID)}})
		assert.Len(t, got, 2)
	})

	t.Run("by vehicle", func(t *testing.T) {
		got := ApplyFilter(records, domain.CalendarFilter{Scope: domain.Scope{VehicleID: ptr.Ptr(vehicleID)}})
		require.Len(t, got, 1)
		assert.Equal(t, records[0].ID, got[0].ID)
	})

	t.Run("by user", func(t *testing.T) {
		got := ApplyFilter(records, domain.CalendarFilter{Scope: domain.Scope{UserID: ptr.Ptr(userID)}})
		require.Len(t, got, 1)
		assert.Equal(t, records[1].ID, got[0].ID)
	})

	t.Run("unknown id matches nothing", func(t *testing.T) {
		got := ApplyFilter(records, domain.CalendarFilter{Scope: domain.Scope{VehicleID: ptr.Ptr(uuid.New())}})
		assert.Empty(t, got)
	})
}

// Записи с неразрешенной ссылкой (период-сирота) не проходят scope предикат
func TestApplyFilterUnresolvedRefFailsScope(t *testing.T) {
	records := []models.CalendarRecord{
		{ID: uuid.New(), Kind: domain.KindVehicle, Ref: models.Ref{}},
	}

	got := ApplyFilter(records, domain.CalendarFilter{Scope: domain.Scope{VehicleID: ptr.Ptr(uuid.New())}})

	assert.Empty(t, got)
}

// Фильтр по оборудованию учитывает оба представления ссылки:
// одиночный itemId и срез itemIds
func TestApplyFilterItemDualRepresentation(t *testing.T) {
	itemID := uuid.New()
	otherID := uuid.New()

	records := []models.CalendarRecord{
		{ID: uuid.New(), Kind: domain.KindItem, Ref: models.Ref{ItemID: ptr.Ptr(itemID)}},
		{ID: uuid.New(), Kind: domain.KindItem, Ref: models.Ref{
			ItemID:  ptr.Ptr(otherID),
			ItemIDs: []uuid.UUID{otherID, itemID},
		}},
		{ID: uuid.New(), Kind: domain.KindItem, Ref: models.Ref{ItemID: ptr.Ptr(otherID)}},
	}

	got := ApplyFilter(records, domain.CalendarFilter{Scope: domain.Scope{ItemID: ptr.Ptr(itemID)}})

	require.Len(t, got, 2)
	assert.Equal(t, records[0].ID, got[0].ID)
	assert.Equal(t, records[1].ID, got[1].ID)
}

func TestApplyFilterTextSearch(t *testing.T) {
	records := []models.CalendarRecord{
		{ID: uuid.New(), Title: "Concert rigging"},
		{ID: uuid.New(), Title: "Warehouse shift", JobTitle: ptr.Ptr("Summer concert tour")},
		{ID: uuid.New(), Title: "Maintenance day"},
	}

	got := ApplyFilter(records, domain.CalendarFilter{Text: "concert"})

	require.Len(t, got, 2)
	for _, r := range got {
		assert.NotEqual(t, "Maintenance day", r.Title)
	}
}

func TestApplyFilterTextSearchByProjectLead(t *testing.T) {
	records := []models.CalendarRecord{
		{ID: uuid.New(), Title: "Setup", ProjectLead: &models.Lead{ID: uuid.New(), DisplayName: "Maria Petrova"}},
		{ID: uuid.New(), Title: "Teardown"},
	}

	got := ApplyFilter(records, domain.CalendarFilter{Text: "petrova"})

	require.Len(t, got, 1)
	assert.Equal(t, records[0].ID, got[0].ID)
}

// Пустой после trim текст не меняет ни состав, ни порядок записей
func TestApplyFilterBlankTextKeepsOrder(t *testing.T) {
	records := []models.CalendarRecord{
		{ID: uuid.New(), Title: "zzz"},
		{ID: uuid.New(), Title: "aaa"},
	}

	got := ApplyFilter(records, domain.CalendarFilter{Text: "   "})

	assert.Equal(t, records, got)
}

// ApplyFilter не модифицирует входной срез
func TestApplyFilterPure(t *testing.T) {
	original := []models.CalendarRecord{
		{ID: uuid.New(), Title: "First", Kind: domain.KindJob},
		{ID: uuid.New(), Title: "Second", Kind: domain.KindCrew},
	}
	snapshot := make([]models.CalendarRecord, len(original))
	copy(snapshot, original)

	ApplyFilter(original, domain.CalendarFilter{
		Kinds: []domain.Kind{domain.KindCrew},
		Text:  "second",
	})

	assert.Equal(t, snapshot, original)
}
