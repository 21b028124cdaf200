package calendar

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// Service сервис агрегации календаря
// Собирает записи календаря из периодов, таблиц-связок и данных работ.
// Состояния между вызовами нет: каждый запрос строит свежие локальные
// отображения и читает то, что бэкенд возвращает на момент вызова
type Service struct {
	periodRepo      PeriodRepository
	reservationRepo ReservationRepository
	jobRepo         JobRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	periodRepo PeriodRepository,
	reservationRepo ReservationRepository,
	jobRepo JobRepository,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:      periodRepo,
		reservationRepo: reservationRepo,
		jobRepo:         jobRepo,
		logger:          logger,
	}
}

// CompanyEvents возвращает календарь всей компании
// Единственный вариант запроса с разрешением вида записи через таблицы-связки
// и с профилем руководителя проекта в обогащении
func (s *Service) CompanyEvents(ctx context.Context, req *models.CompanyEventsRequest) ([]models.CalendarRecord, error) {
	s.logger.Info("CompanyEvents: fetching calendar for company=%s, category=%v", req.CompanyID, req.Category)

	periods, err := s.periodRepo.List(ctx, domain.PeriodFilter{
		CompanyID: req.CompanyID,
		Category:  req.Category,
	})
	if err != nil {
		s.logger.Error("CompanyEvents: repository error for company=%s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: CompanyEvents - repository error: %v", ErrInternal, err)
	}

	jobs, err := s.jobRepo.InfoWithLeadByIDs(ctx, collectJobIDs(periods))
	if err != nil {
		s.logger.Error("CompanyEvents: job enrichment failed for company=%s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: CompanyEvents - job enrichment: %v", ErrInternal, err)
	}

	links, err := s.resolveLinks(ctx, periodIDs(periods))
	if err != nil {
		s.logger.Error("CompanyEvents: link resolution failed for company=%s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: CompanyEvents - link resolution: %v", ErrInternal, err)
	}

	records := make([]models.CalendarRecord, 0, len(periods))
	for _, p := range periods {
		kind := domain.KindForCategory(p.Category)

		// jobId заполняется всегда, независимо от вида записи
		ref := models.Ref{JobID: p.JobID}

		// Отсутствие связки оставляет поле незаполненным:
		// периоды-сироты допустимы и отдаются с неразрешенной ссылкой
		switch kind {
		case domain.KindVehicle:
			if vehicleID, ok := links.vehicles[p.ID]; ok {
				ref.VehicleID = ptr.Ptr(vehicleID)
			}
		case domain.KindItem:
			if itemIDs := links.items[p.ID]; len(itemIDs) > 0 {
				ref.ItemID = ptr.Ptr(itemIDs[0])
				if len(itemIDs) > 1 {
					ref.ItemIDs = itemIDs
				}
			}
		case domain.KindCrew:
			if userID, ok := links.users[p.ID]; ok {
				ref.UserID = ptr.Ptr(userID)
			}
		}

		jobTitle, lead := jobData(jobs, p.JobID)
		records = append(records, models.FromPeriod(p, kind, ref, domain.FallbackTitleEvent, jobTitle, lead))
	}

	s.logger.Info("CompanyEvents: built %d records for company=%s", len(records), req.CompanyID)
	return records, nil
}

// VehicleEvents возвращает календарь одной единицы транспорта
// Поддерживает нижнюю границу по дате начала и пагинацию
func (s *Service) VehicleEvents(ctx context.Context, req *models.VehicleEventsRequest) ([]models.CalendarRecord, error) {
	s.logger.Info("VehicleEvents: fetching calendar for company=%s, vehicle=%s", req.CompanyID, req.VehicleID)

	linkIDs, err := s.reservationRepo.PeriodIDsByVehicle(ctx, req.VehicleID)
	if err != nil {
		s.logger.Error("VehicleEvents: reservation lookup failed for vehicle=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: VehicleEvents - reservation lookup: %v", ErrInternal, err)
	}

	// Нет ни одной связки - периоды не запрашиваем
	if len(linkIDs) == 0 {
		s.logger.Info("VehicleEvents: vehicle=%s has no reservations", req.VehicleID)
		return []models.CalendarRecord{}, nil
	}

	periods, err := s.periodRepo.List(ctx, domain.PeriodFilter{
		CompanyID: req.CompanyID,
		IDs:       linkIDs,
		Category:  ptr.Ptr(domain.CategoryTransport),
		From:      req.From,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		s.logger.Error("VehicleEvents: repository error for vehicle=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: VehicleEvents - repository error: %v", ErrInternal, err)
	}

	return s.entityRecords(ctx, periods, domain.FallbackTitleTransport, func(p *domain.Period) models.Ref {
		return models.Ref{JobID: p.JobID, VehicleID: ptr.Ptr(req.VehicleID)}
	})
}

// ItemEvents возвращает календарь одной единицы оборудования
func (s *Service) ItemEvents(ctx context.Context, req *models.ItemEventsRequest) ([]models.CalendarRecord, error) {
	s.logger.Info("ItemEvents: fetching calendar for company=%s, item=%s", req.CompanyID, req.ItemID)

	linkIDs, err := s.reservationRepo.PeriodIDsByItem(ctx, req.ItemID)
	if err != nil {
		s.logger.Error("ItemEvents: reservation lookup failed for item=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: ItemEvents - reservation lookup: %v", ErrInternal, err)
	}

	if len(linkIDs) == 0 {
		s.logger.Info("ItemEvents: item=%s has no reservations", req.ItemID)
		return []models.CalendarRecord{}, nil
	}

	periods, err := s.periodRepo.List(ctx, domain.PeriodFilter{
		CompanyID: req.CompanyID,
		IDs:       linkIDs,
		Category:  ptr.Ptr(domain.CategoryEquipment),
	})
	if err != nil {
		s.logger.Error("ItemEvents: repository error for item=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: ItemEvents - repository error: %v", ErrInternal, err)
	}

	return s.entityRecords(ctx, periods, domain.FallbackTitleEquipment, func(p *domain.Period) models.Ref {
		return models.Ref{JobID: p.JobID, ItemID: ptr.Ptr(req.ItemID)}
	})
}

// CrewEvents возвращает календарь одного сотрудника
func (s *Service) CrewEvents(ctx context.Context, req *models.CrewEventsRequest) ([]models.CalendarRecord, error) {
	s.logger.Info("CrewEvents: fetching calendar for company=%s, user=%s", req.CompanyID, req.UserID)

	linkIDs, err := s.reservationRepo.PeriodIDsByUser(ctx, req.UserID)
	if err != nil {
		s.logger.Error("CrewEvents: reservation lookup failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CrewEvents - reservation lookup: %v", ErrInternal, err)
	}

	if len(linkIDs) == 0 {
		s.logger.Info("CrewEvents: user=%s has no reservations", req.UserID)
		return []models.CalendarRecord{}, nil
	}

	periods, err := s.periodRepo.List(ctx, domain.PeriodFilter{
		CompanyID: req.CompanyID,
		IDs:       linkIDs,
		Category:  ptr.Ptr(domain.CategoryCrew),
	})
	if err != nil {
		s.logger.Error("CrewEvents: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CrewEvents - repository error: %v", ErrInternal, err)
	}

	return s.entityRecords(ctx, periods, domain.FallbackTitleCrew, func(p *domain.Period) models.Ref {
		return models.Ref{JobID: p.JobID, UserID: ptr.Ptr(req.UserID)}
	})
}

// JobEvents возвращает календарь одной работы
// Прямой фильтр по job_id, без таблиц-связок
func (s *Service) JobEvents(ctx context.Context, req *models.JobEventsRequest) ([]models.CalendarRecord, error) {
	s.logger.Info("JobEvents: fetching calendar for company=%s, job=%s", req.CompanyID, req.JobID)

	periods, err := s.periodRepo.List(ctx, domain.PeriodFilter{
		CompanyID: req.CompanyID,
		JobID:     ptr.Ptr(req.JobID),
	})
	if err != nil {
		s.logger.Error("JobEvents: repository error for job=%s: %v", req.JobID, err)
		return nil, fmt.Errorf("%w: JobEvents - repository error: %v", ErrInternal, err)
	}

	return s.entityRecords(ctx, periods, domain.FallbackTitleProgram, func(p *domain.Period) models.Ref {
		return models.Ref{JobID: p.JobID}
	})
}

// entityRecords общий хвост всех entity-scoped запросов:
// обогащение названиями работ и нормализация
func (s *Service) entityRecords(
	ctx context.Context,
	periods []*domain.Period,
	fallbackTitle string,
	refFor func(p *domain.Period) models.Ref,
) ([]models.CalendarRecord, error) {
	titles, err := s.jobRepo.TitlesByIDs(ctx, collectJobIDs(periods))
	if err != nil {
		s.logger.Error("entityRecords: job title enrichment failed: %v", err)
		return nil, fmt.Errorf("%w: job title enrichment: %v", ErrInternal, err)
	}

	records := make([]models.CalendarRecord, 0, len(periods))
	for _, p := range periods {
		var jobTitle *string
		if p.JobID != nil {
			if title, ok := titles[*p.JobID]; ok {
				jobTitle = ptr.Ptr(title)
			}
		}
		kind := domain.KindForCategory(p.Category)
		records = append(records, models.FromPeriod(p, kind, refFor(p), fallbackTitle, jobTitle, nil))
	}

	return records, nil
}

// collectJobIDs собирает уникальные непустые идентификаторы работ
func collectJobIDs(periods []*domain.Period) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(periods))
	ids := make([]uuid.UUID, 0, len(periods))
	for _, p := range periods {
		if p.JobID == nil {
			continue
		}
		if _, ok := seen[*p.JobID]; ok {
			continue
		}
		seen[*p.JobID] = struct{}{}
		ids = append(ids, *p.JobID)
	}
	return ids
}

// periodIDs собирает идентификаторы периодов
func periodIDs(periods []*domain.Period) []uuid.UUID {
	ids := make([]uuid.UUID, len(periods))
	for i, p := range periods {
		ids[i] = p.ID
	}
	return ids
}

// jobData достает название и руководителя работы из построенного отображения
func jobData(jobs map[uuid.UUID]domain.JobInfo, jobID *uuid.UUID) (*string, *domain.Profile) {
	if jobID == nil {
		return nil, nil
	}
	info, ok := jobs[*jobID]
	if !ok {
		return nil, nil
	}
	return ptr.Ptr(info.Title), info.Lead
}
