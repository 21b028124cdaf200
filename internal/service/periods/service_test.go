package periods

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	periodRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/period"
)

type fakePeriodRepo struct {
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Period, error)
	softDeleteFn    func(ctx context.Context, id uuid.UUID) error
	softDeleteCalls int
}

func (f *fakePeriodRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, periodRepo.ErrPeriodNotFound
}

func (f *fakePeriodRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	f.softDeleteCalls++
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, id)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestDelete(t *testing.T) {
	companyID := uuid.New()
	periodID := uuid.New()

	repo := &fakePeriodRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
			return &domain.Period{ID: id, CompanyID: companyID}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), periodID, companyID)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.softDeleteCalls)
}

func TestDeleteNotFound(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrPeriodNotFound)
	assert.Equal(t, 0, repo.softDeleteCalls)
}

// Период чужой компании недоступен для удаления
func TestDeleteForeignCompanyDenied(t *testing.T) {
	repo := &fakePeriodRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
			return &domain.Period{ID: id, CompanyID: uuid.New()}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, repo.softDeleteCalls)
}

func TestDeleteRepositoryError(t *testing.T) {
	repo := &fakePeriodRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrInternal)
}
