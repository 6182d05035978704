package usecase

import (
	"github.com/google/uuid"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
)

// CopyStoreDefaultsToSheet snapshots the store's active default delivery areas
// into a newly created sheet. It runs exactly once, at creation time; later
// edits to the store defaults never reach existing sheets. A store with no
// defaults yields an empty list, which is a valid sheet state, not an error.
func (uc *DefaultDailyMenuUsecase) CopyStoreDefaultsToSheet(storeID, dailyMenuID string) ([]*domain.DailyDeliveryArea, error) {
	if storeID == "" {
		return nil, &domain.ValidationError{Field: "storeId"}
	}
	if dailyMenuID == "" {
		return nil, &domain.ValidationError{Field: "dailyMenuId"}
	}

	defaults, err := uc.Settings.GetActiveDeliveryAreas(storeID)
	if err != nil {
		return nil, err
	}
	if len(defaults) == 0 {
		return []*domain.DailyDeliveryArea{}, nil
	}

	areas := make([]*domain.DailyDeliveryArea, 0, len(defaults))
	for _, def := range defaults {
		areas = append(areas, &domain.DailyDeliveryArea{
			ID:          uuid.New().String(),
			DailyMenuID: dailyMenuID,
			Name:        def.Name,
			DeliveryFee: def.DeliveryFee,
			IsActive:    true,
		})
	}

	if err := uc.MenuRepo.CreateDeliveryAreas(areas); err != nil {
		return nil, err
	}
	return areas, nil
}
