package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/metrics"
	dailymenudto "github.com/khyunjo1/paytalk-menu-service/internal/usecase/dto/dailymenu"
	"github.com/khyunjo1/paytalk-menu-service/internal/usecase/window"
)

// defaultTitleTemplate titles a sheet when the owner has not named it yet.
const defaultTitleTemplate = "%s · %s"

const shareSlugLength = 8

type DailyMenuUsecase interface {
	GetOrCreate(storeID, menuDate string) (*domain.DailyMenu, error)
	GetForOffset(storeID string, dayOffset int) (*domain.DailyMenu, error)
	GetSheetView(storeID, menuDate string) (*dailymenudto.SheetView, error)

	UpdateSettings(input *dailymenudto.UpdateSettingsInput) (*domain.DailyMenu, error)
	ReplaceItems(input *dailymenudto.ReplaceItemsInput) ([]*domain.DailyMenuItem, error)
	SetItemSoldOut(input *dailymenudto.SetSoldOutInput) error
	UpdateDeliveryArea(input *dailymenudto.UpdateAreaInput) (*domain.DailyDeliveryArea, error)

	CopyStoreDefaultsToSheet(storeID, dailyMenuID string) ([]*domain.DailyDeliveryArea, error)
	DeactivateStaleSheets() error
}

type DefaultDailyMenuUsecase struct {
	MenuRepo  domain.DailyMenuRepository
	Settings  domain.SettingsStore
	Catalog   domain.MenuCatalog
	Clock     domain.Clock
	Publisher domain.PublisherPort
	Metrics   *metrics.MenuMetrics
}

func NewDefaultDailyMenuUsecase(
	menuRepo domain.DailyMenuRepository,
	settings domain.SettingsStore,
	catalog domain.MenuCatalog,
	clock domain.Clock,
	publisher domain.PublisherPort,
	menuMetrics *metrics.MenuMetrics) *DefaultDailyMenuUsecase {

	return &DefaultDailyMenuUsecase{
		MenuRepo:  menuRepo,
		Settings:  settings,
		Catalog:   catalog,
		Clock:     clock,
		Publisher: publisher,
		Metrics:   menuMetrics,
	}
}

// GetOrCreate resolves the one sheet for (store, date), creating it from store
// defaults on first access. A create race with another surface is absorbed by
// re-fetching the winning row; the caller never sees the conflict.
func (uc *DefaultDailyMenuUsecase) GetOrCreate(storeID, menuDate string) (*domain.DailyMenu, error) {
	if storeID == "" {
		return nil, &domain.ValidationError{Field: "storeId"}
	}
	if menuDate == "" {
		return nil, &domain.ValidationError{Field: "menuDate"}
	}
	if _, err := domain.ParseDate(menuDate); err != nil {
		return nil, err
	}

	// Side-call before every read so evaluators see fresh active flags.
	// The sweep's rule set lives in the database, not here.
	if err := uc.MenuRepo.SweepStale(storeID); err != nil {
		slog.Warn("stale sheet sweep failed", "store_id", storeID, "error", err.Error())
	}

	menu, err := uc.MenuRepo.GetDailyMenu(storeID, menuDate)
	if err == nil {
		uc.Metrics.RecordSheetReused(storeID)
		return menu, nil
	}
	if !errors.Is(err, domain.ErrMenuNotFound) {
		return nil, err
	}

	return uc.createSheet(storeID, menuDate)
}

func (uc *DefaultDailyMenuUsecase) createSheet(storeID, menuDate string) (*domain.DailyMenu, error) {
	store, err := uc.Settings.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf(defaultTitleTemplate, store.Name, menuDate)
	description := store.Description

	menu := &domain.DailyMenu{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		MenuDate:       menuDate,
		Title:          title,
		Description:    description,
		IsActive:       true,
		PickupWindow:   store.PickupWindow,
		DeliverySlots:  store.DeliverySlots,
		OrderCutoff:    store.OrderCutoff,
		MinOrderAmount: store.MinOrderAmount,
		ShareSlug:      newShareSlug(),
	}
	if menu.PickupWindow.Start == "" || menu.PickupWindow.End == "" {
		menu.PickupWindow = domain.DefaultPickupWindow
	}

	if err := uc.MenuRepo.CreateDailyMenu(menu); err != nil {
		if errors.Is(err, domain.ErrSheetExists) {
			// Another tab or a buyer request won the race.
			uc.Metrics.RecordSheetConflict(storeID)
			return uc.MenuRepo.GetDailyMenu(storeID, menuDate)
		}
		return nil, err
	}

	if _, err := uc.CopyStoreDefaultsToSheet(storeID, menu.ID); err != nil {
		slog.Warn("delivery area inheritance failed",
			"store_id", storeID, "menu_date", menuDate, "error", err.Error())
	}

	uc.Metrics.RecordSheetCreated(storeID)
	uc.publish(domain.MenuEvent{
		EventType:   domain.EventSheetCreated,
		StoreID:     storeID,
		DailyMenuID: menu.ID,
		MenuDate:    menuDate,
	})

	return menu, nil
}

// GetForOffset is the "today"/"tomorrow" convenience: offset 0 is today in the
// business zone, 1 is tomorrow.
func (uc *DefaultDailyMenuUsecase) GetForOffset(storeID string, dayOffset int) (*domain.DailyMenu, error) {
	date, err := domain.ShiftDate(domain.FormatDate(uc.Clock.Now()), dayOffset)
	if err != nil {
		return nil, err
	}
	return uc.GetOrCreate(storeID, date)
}

// GetSheetView assembles the buyer read model: sheet, items, areas and the
// window evaluator's verdict for the sheet's date.
func (uc *DefaultDailyMenuUsecase) GetSheetView(storeID, menuDate string) (*dailymenudto.SheetView, error) {
	menu, err := uc.GetOrCreate(storeID, menuDate)
	if err != nil {
		return nil, err
	}

	items, err := uc.MenuRepo.GetItems(menu.ID)
	if err != nil {
		return nil, err
	}
	areas, err := uc.MenuRepo.GetDeliveryAreas(menu.ID)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	class, err := window.Classify(menu.MenuDate, domain.FormatDate(now))
	if err != nil {
		return nil, err
	}
	closed, err := window.IsOrderingClosed(menu.MenuDate, menu.CutoffOrDefault(), now)
	if err != nil {
		return nil, err
	}
	uc.Metrics.RecordOrderingDecision(storeID, closed)

	return &dailymenudto.SheetView{
		Menu:           menu,
		Items:          items,
		DeliveryAreas:  areas,
		DateClass:      class.String(),
		OrderingClosed: closed,
	}, nil
}

func (uc *DefaultDailyMenuUsecase) UpdateSettings(input *dailymenudto.UpdateSettingsInput) (*domain.DailyMenu, error) {
	menu, err := uc.GetOrCreate(input.StoreID, input.MenuDate)
	if err != nil {
		return nil, err
	}

	wasActive := menu.IsActive

	if input.Title != nil {
		menu.Title = *input.Title
	}
	if input.Description != nil {
		menu.Description = *input.Description
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}
	if input.OrderCutoff != nil {
		if *input.OrderCutoff != "" && !input.OrderCutoff.Valid() {
			return nil, &domain.ValidationError{Field: "orderCutoff"}
		}
		menu.OrderCutoff = *input.OrderCutoff
	}
	if input.PickupWindow != nil {
		if !input.PickupWindow.Start.Valid() || !input.PickupWindow.End.Valid() {
			return nil, &domain.ValidationError{Field: "pickupWindow"}
		}
		menu.PickupWindow = *input.PickupWindow
	}
	if input.DeliverySlots != nil {
		for _, slot := range *input.DeliverySlots {
			if !slot.Start.Valid() || !slot.End.Valid() {
				return nil, &domain.ValidationError{Field: "deliverySlots"}
			}
		}
		menu.DeliverySlots = *input.DeliverySlots
	}
	if input.MinOrderAmount != nil {
		if *input.MinOrderAmount < 0 {
			return nil, &domain.ValidationError{Field: "minOrderAmount"}
		}
		menu.MinOrderAmount = *input.MinOrderAmount
	}

	if err := uc.MenuRepo.UpdateDailyMenu(menu); err != nil {
		return nil, err
	}

	if wasActive && !menu.IsActive {
		uc.publish(domain.MenuEvent{
			EventType:   domain.EventSheetDeactivated,
			StoreID:     menu.StoreID,
			DailyMenuID: menu.ID,
			MenuDate:    menu.MenuDate,
		})
	}

	return menu, nil
}

// ReplaceItems swaps the sheet's item selection. Menu IDs that are not on the
// store's catalog are dropped rather than rejected, matching the owner UI
// which can hold stale selections after a catalog edit.
func (uc *DefaultDailyMenuUsecase) ReplaceItems(input *dailymenudto.ReplaceItemsInput) ([]*domain.DailyMenuItem, error) {
	menu, err := uc.GetOrCreate(input.StoreID, input.MenuDate)
	if err != nil {
		return nil, err
	}

	catalog, err := uc.Catalog.GetMenusByStoreID(input.StoreID)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(catalog))
	for _, entry := range catalog {
		known[entry.ID] = true
	}

	menuIDs := make([]string, 0, len(input.MenuIDs))
	seen := make(map[string]bool, len(input.MenuIDs))
	for _, id := range input.MenuIDs {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		menuIDs = append(menuIDs, id)
	}

	return uc.MenuRepo.ReplaceItems(menu.ID, menuIDs)
}

func (uc *DefaultDailyMenuUsecase) SetItemSoldOut(input *dailymenudto.SetSoldOutInput) error {
	menu, err := uc.GetOrCreate(input.StoreID, input.MenuDate)
	if err != nil {
		return err
	}
	return uc.MenuRepo.SetItemSoldOut(menu.ID, input.MenuID, input.SoldOut)
}

func (uc *DefaultDailyMenuUsecase) UpdateDeliveryArea(input *dailymenudto.UpdateAreaInput) (*domain.DailyDeliveryArea, error) {
	menu, err := uc.GetOrCreate(input.StoreID, input.MenuDate)
	if err != nil {
		return nil, err
	}

	areas, err := uc.MenuRepo.GetDeliveryAreas(menu.ID)
	if err != nil {
		return nil, err
	}

	var area *domain.DailyDeliveryArea
	for _, a := range areas {
		if a.ID == input.AreaID {
			area = a
			break
		}
	}
	if area == nil {
		return nil, domain.ErrAreaNotFound
	}

	if input.Name != nil {
		area.Name = *input.Name
	}
	if input.DeliveryFee != nil {
		if *input.DeliveryFee < 0 {
			return nil, &domain.ValidationError{Field: "deliveryFee"}
		}
		area.DeliveryFee = *input.DeliveryFee
	}
	if input.IsActive != nil {
		area.IsActive = *input.IsActive
	}

	if err := uc.MenuRepo.UpdateDeliveryArea(area); err != nil {
		return nil, err
	}
	return area, nil
}

// DeactivateStaleSheets runs the sweep across every store. The background
// ticker calls this; per-read sweeps go through GetOrCreate.
func (uc *DefaultDailyMenuUsecase) DeactivateStaleSheets() error {
	return uc.MenuRepo.SweepStale("")
}

func (uc *DefaultDailyMenuUsecase) publish(event domain.MenuEvent) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishMenuEvent(event); err != nil {
		slog.Warn("menu event publish failed",
			"event_type", event.EventType, "store_id", event.StoreID, "error", err.Error())
	}
}

func newShareSlug() string {
	generator, err := nanoid.Standard(shareSlugLength)
	if err != nil {
		return strings.SplitN(uuid.New().String(), "-", 2)[0]
	}
	return generator()
}
