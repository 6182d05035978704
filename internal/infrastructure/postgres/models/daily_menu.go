package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyMenuModel stores one order sheet per (store, date). The composite
// unique index is the last line of defense against concurrent creators.
type DailyMenuModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	StoreID        string `gorm:"not null;uniqueIndex:idx_store_menu_date;index:idx_daily_menu_store"`
	MenuDate       string `gorm:"not null;type:date;uniqueIndex:idx_store_menu_date"`
	Title          string `gorm:"not null"`
	Description    string
	IsActive       bool   `gorm:"default:true"`
	PickupWindow   string `gorm:"type:jsonb"`
	DeliverySlots  string `gorm:"type:jsonb"`
	OrderCutoff    string
	MinOrderAmount int    `gorm:"default:0"`
	ShareSlug      string `gorm:"index:idx_daily_menu_slug"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (DailyMenuModel) TableName() string {
	return "daily_menus"
}

type DailyMenuItemModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	DailyMenuID string `gorm:"not null;uniqueIndex:idx_sheet_menu;index:idx_item_sheet"`
	MenuID      string `gorm:"not null;uniqueIndex:idx_sheet_menu"`
	SoldOut     bool   `gorm:"default:false"`
	CreatedAt   time.Time
}

func (DailyMenuItemModel) TableName() string {
	return "daily_menu_items"
}

type DailyDeliveryAreaModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	DailyMenuID string `gorm:"not null;index:idx_area_sheet"`
	Name        string `gorm:"not null"`
	DeliveryFee int    `gorm:"default:0"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DailyDeliveryAreaModel) TableName() string {
	return "daily_delivery_areas"
}
