package domain

import "time"

// Store carries the per-store defaults a new daily sheet inherits. This core
// only reads stores; profile editing lives elsewhere.
type Store struct {
	ID             string
	OwnerID        string
	Name           string
	Description    string
	Category       string
	IsActive       bool
	OrderCutoff    TimeOfDay
	PickupWindow   PickupWindow
	DeliverySlots  []DeliverySlot
	MinOrderAmount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StoreDeliveryArea is a store-level default, snapshotted into each new sheet.
type StoreDeliveryArea struct {
	ID          string
	StoreID     string
	Name        string
	DeliveryFee int
	IsActive    bool
}

// Menu is a catalog entry on the store's standing menu list.
type Menu struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	Price       int
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SettingsStore interface {
	GetStoreByID(storeID string) (*Store, error)
	GetStoresByOwnerID(ownerID string) ([]*Store, error)
	GetActiveDeliveryAreas(storeID string) ([]*StoreDeliveryArea, error)
}

type MenuCatalog interface {
	GetMenusByStoreID(storeID string) ([]*Menu, error)
}
