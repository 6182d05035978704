package mappers

import (
	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/models"
)

func ToGORMDailyMenu(menu *domain.DailyMenu) *models.DailyMenuModel {
	return &models.DailyMenuModel{
		ID:             menu.ID,
		StoreID:        menu.StoreID,
		MenuDate:       menu.MenuDate,
		Title:          menu.Title,
		Description:    menu.Description,
		IsActive:       menu.IsActive,
		PickupWindow:   EncodePickupWindow(menu.PickupWindow),
		DeliverySlots:  EncodeDeliverySlots(menu.DeliverySlots),
		OrderCutoff:    string(menu.OrderCutoff),
		MinOrderAmount: menu.MinOrderAmount,
		ShareSlug:      menu.ShareSlug,
		CreatedAt:      menu.CreatedAt,
		UpdatedAt:      menu.UpdatedAt,
	}
}

func ToDomainDailyMenu(model *models.DailyMenuModel) *domain.DailyMenu {
	return &domain.DailyMenu{
		ID:             model.ID,
		StoreID:        model.StoreID,
		MenuDate:       model.MenuDate,
		Title:          model.Title,
		Description:    model.Description,
		IsActive:       model.IsActive,
		PickupWindow:   DecodePickupWindow(model.PickupWindow),
		DeliverySlots:  DecodeDeliverySlots(model.DeliverySlots),
		OrderCutoff:    domain.TimeOfDay(model.OrderCutoff),
		MinOrderAmount: model.MinOrderAmount,
		ShareSlug:      model.ShareSlug,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMDailyMenuItem(item *domain.DailyMenuItem) *models.DailyMenuItemModel {
	return &models.DailyMenuItemModel{
		ID:          item.ID,
		DailyMenuID: item.DailyMenuID,
		MenuID:      item.MenuID,
		SoldOut:     item.SoldOut,
		CreatedAt:   item.CreatedAt,
	}
}

func ToDomainDailyMenuItem(model *models.DailyMenuItemModel) *domain.DailyMenuItem {
	return &domain.DailyMenuItem{
		ID:          model.ID,
		DailyMenuID: model.DailyMenuID,
		MenuID:      model.MenuID,
		SoldOut:     model.SoldOut,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMDailyDeliveryArea(area *domain.DailyDeliveryArea) *models.DailyDeliveryAreaModel {
	return &models.DailyDeliveryAreaModel{
		ID:          area.ID,
		DailyMenuID: area.DailyMenuID,
		Name:        area.Name,
		DeliveryFee: area.DeliveryFee,
		IsActive:    area.IsActive,
		CreatedAt:   area.CreatedAt,
		UpdatedAt:   area.UpdatedAt,
	}
}

func ToDomainDailyDeliveryArea(model *models.DailyDeliveryAreaModel) *domain.DailyDeliveryArea {
	return &domain.DailyDeliveryArea{
		ID:          model.ID,
		DailyMenuID: model.DailyMenuID,
		Name:        model.Name,
		DeliveryFee: model.DeliveryFee,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
