package calendar

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// periodLinks результат разрешения связок по набору периодов
type periodLinks struct {
	vehicles map[uuid.UUID]uuid.UUID
	items    map[uuid.UUID][]uuid.UUID
	users    map[uuid.UUID]uuid.UUID
}

// resolveLinks выполняет три батчевых запроса к таблицам-связкам параллельно
// Параллельность здесь только ради латентности: зависимости по порядку
// между запросами нет. Ждем все три; первая ошибка отменяет остальные
// и прерывает операцию целиком
func (s *Service) resolveLinks(ctx context.Context, ids []uuid.UUID) (*periodLinks, error) {
	links := &periodLinks{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vehicles, err := s.reservationRepo.VehicleLinksByPeriods(gctx, ids)
		if err != nil {
			return fmt.Errorf("vehicle links: %w", err)
		}
		links.vehicles = vehicles
		return nil
	})

	g.Go(func() error {
		items, err := s.reservationRepo.ItemLinksByPeriods(gctx, ids)
		if err != nil {
			return fmt.Errorf("item links: %w", err)
		}
		links.items = items
		return nil
	})

	g.Go(func() error {
		users, err := s.reservationRepo.UserLinksByPeriods(gctx, ids)
		if err != nil {
			return fmt.Errorf("user links: %w", err)
		}
		links.users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return links, nil
}
