package dailymenudto

import "github.com/khyunjo1/paytalk-menu-service/internal/domain"

// UpdateSettingsInput carries the owner-editable sheet fields. Nil pointers
// leave the stored value untouched.
type UpdateSettingsInput struct {
	StoreID  string
	MenuDate string

	Title          *string
	Description    *string
	IsActive       *bool
	OrderCutoff    *domain.TimeOfDay
	PickupWindow   *domain.PickupWindow
	DeliverySlots  *[]domain.DeliverySlot
	MinOrderAmount *int
}

type ReplaceItemsInput struct {
	StoreID  string
	MenuDate string
	MenuIDs  []string
}

type SetSoldOutInput struct {
	StoreID  string
	MenuDate string
	MenuID   string
	SoldOut  bool
}

type UpdateAreaInput struct {
	StoreID  string
	MenuDate string
	AreaID   string

	Name        *string
	DeliveryFee *int
	IsActive    *bool
}
