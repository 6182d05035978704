package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/mappers"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/models"
)

type DefaultDailyMenuRepository struct {
	DB *gorm.DB
}

func NewDefaultDailyMenuRepository(db *gorm.DB) *DefaultDailyMenuRepository {
	return &DefaultDailyMenuRepository{DB: db}
}

func (r *DefaultDailyMenuRepository) CreateDailyMenu(menu *domain.DailyMenu) error {
	model := mappers.ToGORMDailyMenu(menu)
	if err := r.DB.Create(model).Error; err != nil {
		// The (store_id, menu_date) unique index rejected a concurrent
		// creator; the caller re-fetches the winning row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSheetExists
		}
		return domain.NewUpstreamError("create daily menu", err)
	}
	menu.CreatedAt = model.CreatedAt
	menu.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultDailyMenuRepository) GetDailyMenu(storeID, menuDate string) (*domain.DailyMenu, error) {
	var model models.DailyMenuModel
	err := r.DB.First(&model, "store_id = ? AND menu_date = ?", storeID, menuDate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, domain.NewUpstreamError("get daily menu", err)
	}
	return mappers.ToDomainDailyMenu(&model), nil
}

func (r *DefaultDailyMenuRepository) UpdateDailyMenu(menu *domain.DailyMenu) error {
	model := mappers.ToGORMDailyMenu(menu)
	result := r.DB.Model(&models.DailyMenuModel{}).
		Where("id = ?", menu.ID).
		Select("Title", "Description", "IsActive", "PickupWindow", "DeliverySlots",
			"OrderCutoff", "MinOrderAmount").
		Updates(model)
	if result.Error != nil {
		return domain.NewUpstreamError("update daily menu", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (r *DefaultDailyMenuRepository) GetMostRecentBefore(storeID, beforeDate string) (*domain.DailyMenu, error) {
	var model models.DailyMenuModel
	err := r.DB.Where("store_id = ? AND menu_date < ?", storeID, beforeDate).
		Order("menu_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, domain.NewUpstreamError("get most recent daily menu", err)
	}
	return mappers.ToDomainDailyMenu(&model), nil
}

// SweepStale runs the auto-deactivation stored procedure. The rule set for
// which sheets go inactive lives in the database, not here.
func (r *DefaultDailyMenuRepository) SweepStale(storeID string) error {
	var arg any
	if storeID != "" {
		arg = storeID
	}
	if err := r.DB.Exec("SELECT deactivate_stale_menus(?)", arg).Error; err != nil {
		return domain.NewUpstreamError("sweep stale menus", err)
	}
	return nil
}

func (r *DefaultDailyMenuRepository) GetItems(dailyMenuID string) ([]*domain.DailyMenuItem, error) {
	var itemModels []*models.DailyMenuItemModel
	err := r.DB.Where("daily_menu_id = ?", dailyMenuID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, domain.NewUpstreamError("get daily menu items", err)
	}

	items := make([]*domain.DailyMenuItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = mappers.ToDomainDailyMenuItem(model)
	}
	return items, nil
}

// ReplaceItems swaps the sheet's selection atomically so partially applied
// selections are never observable.
func (r *DefaultDailyMenuRepository) ReplaceItems(dailyMenuID string, menuIDs []string) ([]*domain.DailyMenuItem, error) {
	items := make([]*domain.DailyMenuItem, 0, len(menuIDs))

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_menu_id = ?", dailyMenuID).
			Delete(&models.DailyMenuItemModel{}).Error; err != nil {
			return err
		}
		for _, menuID := range menuIDs {
			item := &domain.DailyMenuItem{
				ID:          uuid.New().String(),
				DailyMenuID: dailyMenuID,
				MenuID:      menuID,
			}
			model := mappers.ToGORMDailyMenuItem(item)
			if err := tx.Create(model).Error; err != nil {
				return err
			}
			item.CreatedAt = model.CreatedAt
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewUpstreamError("replace daily menu items", err)
	}
	return items, nil
}

func (r *DefaultDailyMenuRepository) SetItemSoldOut(dailyMenuID, menuID string, soldOut bool) error {
	result := r.DB.Model(&models.DailyMenuItemModel{}).
		Where("daily_menu_id = ? AND menu_id = ?", dailyMenuID, menuID).
		Update("sold_out", soldOut)
	if result.Error != nil {
		return domain.NewUpstreamError("set item sold out", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *DefaultDailyMenuRepository) CreateDeliveryAreas(areas []*domain.DailyDeliveryArea) error {
	if len(areas) == 0 {
		return nil
	}
	areaModels := make([]*models.DailyDeliveryAreaModel, len(areas))
	for i, area := range areas {
		areaModels[i] = mappers.ToGORMDailyDeliveryArea(area)
	}
	if err := r.DB.Create(areaModels).Error; err != nil {
		return domain.NewUpstreamError("create delivery areas", err)
	}
	return nil
}

func (r *DefaultDailyMenuRepository) GetDeliveryAreas(dailyMenuID string) ([]*domain.DailyDeliveryArea, error) {
	var areaModels []*models.DailyDeliveryAreaModel
	err := r.DB.Where("daily_menu_id = ?", dailyMenuID).
		Order("created_at ASC").
		Find(&areaModels).Error
	if err != nil {
		return nil, domain.NewUpstreamError("get delivery areas", err)
	}

	areas := make([]*domain.DailyDeliveryArea, len(areaModels))
	for i, model := range areaModels {
		areas[i] = mappers.ToDomainDailyDeliveryArea(model)
	}
	return areas, nil
}

func (r *DefaultDailyMenuRepository) UpdateDeliveryArea(area *domain.DailyDeliveryArea) error {
	result := r.DB.Model(&models.DailyDeliveryAreaModel{}).
		Where("id = ? AND daily_menu_id = ?", area.ID, area.DailyMenuID).
		Updates(map[string]any{
			"name":         area.Name,
			"delivery_fee": area.DeliveryFee,
			"is_active":    area.IsActive,
		})
	if result.Error != nil {
		return domain.NewUpstreamError("update delivery area", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAreaNotFound
	}
	return nil
}
