package usecase

import (
	"fmt"
	"time"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
)

type fakeMenuRepo struct {
	menus map[string]*domain.DailyMenu              // keyed storeID|menuDate
	items map[string][]*domain.DailyMenuItem        // keyed dailyMenuID
	areas map[string][]*domain.DailyDeliveryArea    // keyed dailyMenuID

	sweepCalls  int
	createCalls int

	// conflictWith simulates a concurrent creator winning the unique-index
	// race: the next CreateDailyMenu inserts this row and reports a conflict.
	conflictWith *domain.DailyMenu
	failWith     error
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		menus: make(map[string]*domain.DailyMenu),
		items: make(map[string][]*domain.DailyMenuItem),
		areas: make(map[string][]*domain.DailyDeliveryArea),
	}
}

func menuKey(storeID, menuDate string) string {
	return storeID + "|" + menuDate
}

func (r *fakeMenuRepo) CreateDailyMenu(menu *domain.DailyMenu) error {
	r.createCalls++
	if r.failWith != nil {
		return r.failWith
	}
	if r.conflictWith != nil {
		winner := r.conflictWith
		r.conflictWith = nil
		r.menus[menuKey(winner.StoreID, winner.MenuDate)] = winner
		return domain.ErrSheetExists
	}
	key := menuKey(menu.StoreID, menu.MenuDate)
	if _, exists := r.menus[key]; exists {
		return domain.ErrSheetExists
	}
	copied := *menu
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.menus[key] = &copied
	return nil
}

func (r *fakeMenuRepo) GetDailyMenu(storeID, menuDate string) (*domain.DailyMenu, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	menu, ok := r.menus[menuKey(storeID, menuDate)]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	copied := *menu
	return &copied, nil
}

func (r *fakeMenuRepo) UpdateDailyMenu(menu *domain.DailyMenu) error {
	if r.failWith != nil {
		return r.failWith
	}
	key := menuKey(menu.StoreID, menu.MenuDate)
	if _, ok := r.menus[key]; !ok {
		return domain.ErrMenuNotFound
	}
	copied := *menu
	copied.UpdatedAt = time.Now()
	r.menus[key] = &copied
	return nil
}

func (r *fakeMenuRepo) GetMostRecentBefore(storeID, beforeDate string) (*domain.DailyMenu, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var best *domain.DailyMenu
	for _, menu := range r.menus {
		if menu.StoreID != storeID || menu.MenuDate >= beforeDate {
			continue
		}
		if best == nil || menu.MenuDate > best.MenuDate {
			best = menu
		}
	}
	if best == nil {
		return nil, domain.ErrMenuNotFound
	}
	copied := *best
	return &copied, nil
}

func (r *fakeMenuRepo) SweepStale(storeID string) error {
	r.sweepCalls++
	return nil
}

func (r *fakeMenuRepo) GetItems(dailyMenuID string) ([]*domain.DailyMenuItem, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.items[dailyMenuID], nil
}

func (r *fakeMenuRepo) ReplaceItems(dailyMenuID string, menuIDs []string) ([]*domain.DailyMenuItem, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	items := make([]*domain.DailyMenuItem, 0, len(menuIDs))
	for i, id := range menuIDs {
		items = append(items, &domain.DailyMenuItem{
			ID:          fmt.Sprintf("item-%s-%d", dailyMenuID, i),
			DailyMenuID: dailyMenuID,
			MenuID:      id,
		})
	}
	r.items[dailyMenuID] = items
	return items, nil
}

func (r *fakeMenuRepo) SetItemSoldOut(dailyMenuID, menuID string, soldOut bool) error {
	for _, item := range r.items[dailyMenuID] {
		if item.MenuID == menuID {
			item.SoldOut = soldOut
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *fakeMenuRepo) CreateDeliveryAreas(areas []*domain.DailyDeliveryArea) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, area := range areas {
		r.areas[area.DailyMenuID] = append(r.areas[area.DailyMenuID], area)
	}
	return nil
}

func (r *fakeMenuRepo) GetDeliveryAreas(dailyMenuID string) ([]*domain.DailyDeliveryArea, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.areas[dailyMenuID], nil
}

func (r *fakeMenuRepo) UpdateDeliveryArea(area *domain.DailyDeliveryArea) error {
	for i, existing := range r.areas[area.DailyMenuID] {
		if existing.ID == area.ID {
			r.areas[area.DailyMenuID][i] = area
			return nil
		}
	}
	return domain.ErrAreaNotFound
}

type fakeSettings struct {
	stores   map[string]*domain.Store
	byOwner  map[string][]*domain.Store
	defaults map[string][]*domain.StoreDeliveryArea

	listCalls int
	failWith  error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{
		stores:   make(map[string]*domain.Store),
		byOwner:  make(map[string][]*domain.Store),
		defaults: make(map[string][]*domain.StoreDeliveryArea),
	}
}

func (s *fakeSettings) GetStoreByID(storeID string) (*domain.Store, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	store, ok := s.stores[storeID]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}

func (s *fakeSettings) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	s.listCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.byOwner[ownerID], nil
}

func (s *fakeSettings) GetActiveDeliveryAreas(storeID string) ([]*domain.StoreDeliveryArea, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.defaults[storeID], nil
}

type fakeCatalog struct {
	menus map[string][]*domain.Menu
}

func (c *fakeCatalog) GetMenusByStoreID(storeID string) ([]*domain.Menu, error) {
	return c.menus[storeID], nil
}

type fakePublisher struct {
	events []domain.MenuEvent
}

func (p *fakePublisher) PublishMenuEvent(event domain.MenuEvent) error {
	p.events = append(p.events, event)
	return nil
}
