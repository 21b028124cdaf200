package periods

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	periodRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/period"
)

// Service сервис жизненного цикла периодов
// Календарь периоды только читает; создание живет в отдельном usecase,
// здесь - мягкое удаление
type Service struct {
	periodRepo PeriodRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса периодов
func NewService(periodRepo PeriodRepository, logger Logger) *Service {
	return &Service{
		periodRepo: periodRepo,
		logger:     logger,
	}
}

// Delete мягко удаляет период
// Период компании, не совпадающей с companyID вызывающего, недоступен
func (s *Service) Delete(ctx context.Context, periodID, companyID uuid.UUID) error {
	s.logger.Info("Delete: deleting period id=%s for company=%s", periodID, companyID)

	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Delete: period id=%s not found", periodID)
			return ErrPeriodNotFound
		}
		s.logger.Error("Delete: repository error for period id=%s: %v", periodID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if period.CompanyID != companyID {
		s.logger.Warn("Delete: period id=%s belongs to company=%s, not %s", periodID, period.CompanyID, companyID)
		return ErrAccessDenied
	}

	if err := s.periodRepo.SoftDelete(ctx, periodID); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Delete: period id=%s not found during deletion", periodID)
			return ErrPeriodNotFound
		}
		s.logger.Error("Delete: repository error for period id=%s: %v", periodID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted period id=%s", periodID)
	return nil
}
