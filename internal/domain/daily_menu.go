package domain

import "time"

// DailyMenu is the order sheet a store runs for one calendar date. At most one
// exists per (StoreID, MenuDate); creation is idempotent.
type DailyMenu struct {
	ID             string
	StoreID        string
	MenuDate       string // YYYY-MM-DD, business-local
	Title          string
	Description    string
	IsActive       bool
	PickupWindow   PickupWindow
	DeliverySlots  []DeliverySlot
	OrderCutoff    TimeOfDay // empty means DefaultOrderCutoff
	MinOrderAmount int
	ShareSlug      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CutoffOrDefault resolves the effective cutoff for window evaluation.
func (m *DailyMenu) CutoffOrDefault() TimeOfDay {
	if m.OrderCutoff != "" {
		return m.OrderCutoff
	}
	return DefaultOrderCutoff
}

// DailyMenuItem selects one catalog entry into a sheet. SoldOut is the per-day
// availability toggle, independent of the catalog entry's own flag.
type DailyMenuItem struct {
	ID          string
	DailyMenuID string
	MenuID      string
	SoldOut     bool
	CreatedAt   time.Time
}

// DailyDeliveryArea is a sheet's own copy of a store delivery area. Removal is
// logical deactivation, never deletion.
type DailyDeliveryArea struct {
	ID          string
	DailyMenuID string
	Name        string
	DeliveryFee int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DailyMenuRepository interface {
	// CreateDailyMenu returns ErrSheetExists when the (store, date) row
	// already exists; callers recover by re-fetching.
	CreateDailyMenu(menu *DailyMenu) error
	GetDailyMenu(storeID, menuDate string) (*DailyMenu, error)
	UpdateDailyMenu(menu *DailyMenu) error
	// GetMostRecentBefore returns the newest sheet strictly before beforeDate,
	// or ErrMenuNotFound.
	GetMostRecentBefore(storeID, beforeDate string) (*DailyMenu, error)
	// SweepStale invokes the external auto-deactivation procedure. An empty
	// storeID sweeps every store.
	SweepStale(storeID string) error

	GetItems(dailyMenuID string) ([]*DailyMenuItem, error)
	ReplaceItems(dailyMenuID string, menuIDs []string) ([]*DailyMenuItem, error)
	SetItemSoldOut(dailyMenuID, menuID string, soldOut bool) error

	CreateDeliveryAreas(areas []*DailyDeliveryArea) error
	GetDeliveryAreas(dailyMenuID string) ([]*DailyDeliveryArea, error)
	UpdateDeliveryArea(area *DailyDeliveryArea) error
}
