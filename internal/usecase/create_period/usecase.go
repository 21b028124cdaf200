package create_period

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case для создания периода вместе со связками
type UseCase struct {
	periodRepo      PeriodRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	periodRepo PeriodRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		periodRepo:      periodRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания периода
// Период и его связки пишутся в одной транзакции: период без связки
// допустим, а вот связка без периода - нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePeriod: company=%s, category=%s, start=%s",
		req.CompanyID, req.Category, req.StartAt.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePeriod: validation failed: %v", err)
		return nil, err
	}

	period := &domain.Period{
		ID:        uuid.New(),
		CompanyID: req.CompanyID,
		JobID:     req.JobID,
		Title:     req.Title,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Category:  req.Category,
		Notes:     req.Notes,
		Location:  req.Location,
		Meta:      req.Meta,
	}

	var result *domain.Period

	// 2. Создаем период и связки в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.periodRepo.Create(txCtx, period)
		if err != nil {
			uc.logger.Error("CreatePeriod: failed to create period: %v", err)
			return fmt.Errorf("%w: failed to create period: %v", ErrInternal, err)
		}

		if err := uc.createLinks(txCtx, created.ID, req); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePeriod: successfully created period id=%s", result.ID)
	return fromDomainPeriod(result), nil
}

// createLinks пишет связки периода с сущностями согласно категории
func (uc *UseCase) createLinks(ctx context.Context, periodID uuid.UUID, req *Request) error {
	if req.VehicleID != nil {
		if err := uc.reservationRepo.LinkVehicle(ctx, periodID, *req.VehicleID); err != nil {
			uc.logger.Error("CreatePeriod: failed to link vehicle: %v", err)
			return fmt.Errorf("%w: failed to link vehicle: %v", ErrInternal, err)
		}
	}

	if len(req.ItemIDs) > 0 {
		if err := uc.reservationRepo.LinkItems(ctx, periodID, req.ItemIDs); err != nil {
			uc.logger.Error("CreatePeriod: failed to link items: %v", err)
			return fmt.Errorf("%w: failed to link items: %v", ErrInternal, err)
		}
	}

	if req.UserID != nil {
		if err := uc.reservationRepo.LinkUser(ctx, periodID, *req.UserID); err != nil {
			uc.logger.Error("CreatePeriod: failed to link user: %v", err)
			return fmt.Errorf("%w: failed to link user: %v", ErrInternal, err)
		}
	}

	return nil
}
