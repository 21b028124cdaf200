package reservation

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestPeriodIDsByVehicle(t *testing.T) {
	repo, mock := newMock(t)
	vehicleID := uuid.New()
	p1 := uuid.New()
	p2 := uuid.New()

	mock.ExpectQuery(`SELECT time_period_id FROM time_period_vehicles WHERE vehicle_id = \$1`).
		WithArgs(vehicleID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"time_period_id"}).
			AddRow(p1.String()).
			AddRow(p2.String()))

	got, err := repo.PeriodIDsByVehicle(context.Background(), vehicleID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1, p2}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPeriodIDsByUserEmpty(t *testing.T) {
	repo, mock := newMock(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT time_period_id FROM time_period_users WHERE user_id = \$1`).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"time_period_id"}))

	got, err := repo.PeriodIDsByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Период с несколькими единицами оборудования группируется в один ключ

func TestItemLinksByPeriodsGroups(t *testing.T) {
	repo, mock := newMock(t)
	periodID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()

	mock.ExpectQuery(`SELECT time_period_id, item_id FROM time_period_items WHERE time_period_id IN \(\$1\)`).
		WithArgs(periodID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"time_period_id", "item_id"}).
			AddRow(periodID.String(), itemA.String()).
			AddRow(periodID.String(), itemB.String()))

	got, err := repo.ItemLinksByPeriods(context.Background(), []uuid.UUID{periodID})

	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID][]uuid.UUID{periodID: {itemA, itemB}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Пустой набор периодов: запрос к БД не выполняется

func TestLinksByPeriodsEmptyInputShortCircuits(t *testing.T) {
	repo, mock := newMock(t)

	vehicles, err := repo.VehicleLinksByPeriods(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	items, err := repo.ItemLinksByPeriods(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)

	users, err := repo.UserLinksByPeriods(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleLinksByPeriods(t *testing.T) {
	repo, mock := newMock(t)
	periodID := uuid.New()
	vehicleID := uuid.New()

	mock.ExpectQuery(`SELECT time_period_id, vehicle_id FROM time_period_vehicles WHERE time_period_id IN \(\$1\)`).
		WithArgs(periodID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"time_period_id", "vehicle_id"}).
			AddRow(periodID.String(), vehicleID.String()))

	got, err := repo.VehicleLinksByPeriods(context.Background(), []uuid.UUID{periodID})

	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]uuid.UUID{periodID: vehicleID}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkItemsBatchInsert(t *testing.T) {
	repo, mock := newMock(t)
	periodID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()

	mock.ExpectExec(`INSERT INTO time_period_items \(time_period_id,item_id\) VALUES \(\$1,\$2\),\(\$3,\$4\)`).
		WithArgs(periodID.String(), itemA.String(), periodID.String(), itemB.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.LinkItems(context.Background(), periodID, []uuid.UUID{itemA, itemB})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkItemsEmptyNoop(t *testing.T) {
	repo, mock := newMock(t)

	err := repo.LinkItems(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkVehicle(t *testing.T) {
	repo, mock := newMock(t)
	periodID := uuid.New()
	vehicleID := uuid.New()

	mock.ExpectExec(`INSERT INTO time_period_vehicles \(time_period_id,vehicle_id\) VALUES \(\$1,\$2\)`).
		WithArgs(periodID.String(), vehicleID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.LinkVehicle(context.Background(), periodID, vehicleID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
