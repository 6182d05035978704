package models

import (
	"time"

	"gorm.io/gorm"
)

type StoreModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	OwnerID        string `gorm:"index:idx_store_owner"`
	Name           string `gorm:"not null"`
	Description    string
	Category       string `gorm:"index:idx_store_category"`
	IsActive       bool   `gorm:"default:true"`
	OrderCutoff    string
	PickupWindow   string `gorm:"type:jsonb"`
	DeliverySlots  string `gorm:"type:jsonb"`
	MinOrderAmount int    `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (StoreModel) TableName() string {
	return "stores"
}

type StoreDeliveryAreaModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	StoreID     string `gorm:"not null;index:idx_store_area_store"`
	Name        string `gorm:"not null"`
	DeliveryFee int    `gorm:"default:0"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StoreDeliveryAreaModel) TableName() string {
	return "store_delivery_areas"
}

type MenuModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	StoreID     string `gorm:"not null;index:idx_menu_store"`
	Name        string `gorm:"not null"`
	Description string
	Price       int  `gorm:"default:0"`
	IsAvailable bool `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (MenuModel) TableName() string {
	return "menus"
}
