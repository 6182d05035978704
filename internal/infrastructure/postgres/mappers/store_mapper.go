package mappers

import (
	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:             model.ID,
		OwnerID:        model.OwnerID,
		Name:           model.Name,
		Description:    model.Description,
		Category:       model.Category,
		IsActive:       model.IsActive,
		OrderCutoff:    domain.TimeOfDay(model.OrderCutoff),
		PickupWindow:   DecodePickupWindow(model.PickupWindow),
		DeliverySlots:  DecodeDeliverySlots(model.DeliverySlots),
		MinOrderAmount: model.MinOrderAmount,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToDomainStoreList(storeModels []*models.StoreModel) []*domain.Store {
	stores := make([]*domain.Store, len(storeModels))
	for i, model := range storeModels {
		stores[i] = ToDomainStore(model)
	}
	return stores
}

func ToDomainStoreDeliveryArea(model *models.StoreDeliveryAreaModel) *domain.StoreDeliveryArea {
	return &domain.StoreDeliveryArea{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Name:        model.Name,
		DeliveryFee: model.DeliveryFee,
		IsActive:    model.IsActive,
	}
}

func ToDomainMenu(model *models.MenuModel) *domain.Menu {
	return &domain.Menu{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		IsAvailable: model.IsAvailable,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
