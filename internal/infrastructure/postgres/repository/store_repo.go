package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/mappers"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/models"
)

// DefaultStoreRepository is the read-side of the settings store: this service
// inherits store defaults into sheets but never edits store profiles.
type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	var model models.StoreModel
	if err := r.DB.First(&model, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, domain.NewUpstreamError("get store", err)
	}
	return mappers.ToDomainStore(&model), nil
}

func (r *DefaultStoreRepository) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	var storeModels []*models.StoreModel
	err := r.DB.Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&storeModels).Error
	if err != nil {
		return nil, domain.NewUpstreamError("get stores by owner", err)
	}
	return mappers.ToDomainStoreList(storeModels), nil
}

func (r *DefaultStoreRepository) GetActiveDeliveryAreas(storeID string) ([]*domain.StoreDeliveryArea, error) {
	var areaModels []*models.StoreDeliveryAreaModel
	err := r.DB.Where("store_id = ? AND is_active = ?", storeID, true).
		Order("created_at ASC").
		Find(&areaModels).Error
	if err != nil {
		return nil, domain.NewUpstreamError("get store delivery areas", err)
	}

	areas := make([]*domain.StoreDeliveryArea, len(areaModels))
	for i, model := range areaModels {
		areas[i] = mappers.ToDomainStoreDeliveryArea(model)
	}
	return areas, nil
}

func (r *DefaultStoreRepository) GetMenusByStoreID(storeID string) ([]*domain.Menu, error) {
	var menuModels []*models.MenuModel
	err := r.DB.Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&menuModels).Error
	if err != nil {
		return nil, domain.NewUpstreamError("get store menus", err)
	}

	menus := make([]*domain.Menu, len(menuModels))
	for i, model := range menuModels {
		menus[i] = mappers.ToDomainMenu(model)
	}
	return menus, nil
}
