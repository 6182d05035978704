package httpapi

import (
	"time"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	dailymenudto "github.com/khyunjo1/paytalk-menu-service/internal/usecase/dto/dailymenu"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type updateSettingsRequest struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	IsActive       *bool                  `json:"isActive"`
	OrderCutoff    *domain.TimeOfDay      `json:"orderCutoff"`
	PickupWindow   *domain.PickupWindow   `json:"pickupWindow"`
	DeliverySlots  *[]domain.DeliverySlot `json:"deliverySlots"`
	MinOrderAmount *int                   `json:"minOrderAmount"`
}

type replaceItemsRequest struct {
	MenuIDs []string `json:"menuIds"`
}

type soldOutRequest struct {
	SoldOut bool `json:"soldOut"`
}

type updateAreaRequest struct {
	Name        *string `json:"name"`
	DeliveryFee *int    `json:"deliveryFee"`
	IsActive    *bool   `json:"isActive"`
}

type menuResponse struct {
	ID             string                `json:"id"`
	StoreID        string                `json:"storeId"`
	MenuDate       string                `json:"menuDate"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	IsActive       bool                  `json:"isActive"`
	PickupWindow   domain.PickupWindow   `json:"pickupWindow"`
	DeliverySlots  []domain.DeliverySlot `json:"deliverySlots"`
	OrderCutoff    domain.TimeOfDay      `json:"orderCutoff"`
	MinOrderAmount int                   `json:"minOrderAmount"`
	ShareSlug      string                `json:"shareSlug,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type itemResponse struct {
	ID      string `json:"id"`
	MenuID  string `json:"menuId"`
	SoldOut bool   `json:"soldOut"`
}

type areaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DeliveryFee int    `json:"deliveryFee"`
	IsActive    bool   `json:"isActive"`
}

type sheetResponse struct {
	Menu           menuResponse   `json:"menu"`
	Items          []itemResponse `json:"items"`
	DeliveryAreas  []areaResponse `json:"deliveryAreas"`
	DateClass      string         `json:"dateClass"`
	OrderingClosed bool           `json:"orderingClosed"`
}

type templateResponse struct {
	Found      bool           `json:"found"`
	SourceDate string         `json:"sourceDate,omitempty"`
	Items      []itemResponse `json:"items"`
}

type storeResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Category       string           `json:"category,omitempty"`
	IsActive       bool             `json:"isActive"`
	OrderCutoff    domain.TimeOfDay `json:"orderCutoff,omitempty"`
	MinOrderAmount int              `json:"minOrderAmount"`
}

type catalogResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
}

func toMenuResponse(menu *domain.DailyMenu) menuResponse {
	slots := menu.DeliverySlots
	if slots == nil {
		slots = []domain.DeliverySlot{}
	}
	return menuResponse{
		ID:             menu.ID,
		StoreID:        menu.StoreID,
		MenuDate:       menu.MenuDate,
		Title:          menu.Title,
		Description:    menu.Description,
		IsActive:       menu.IsActive,
		PickupWindow:   menu.PickupWindow,
		DeliverySlots:  slots,
		OrderCutoff:    menu.CutoffOrDefault(),
		MinOrderAmount: menu.MinOrderAmount,
		ShareSlug:      menu.ShareSlug,
		CreatedAt:      menu.CreatedAt,
		UpdatedAt:      menu.UpdatedAt,
	}
}

func toItemResponses(items []*domain.DailyMenuItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse{ID: item.ID, MenuID: item.MenuID, SoldOut: item.SoldOut}
	}
	return out
}

func toAreaResponse(area *domain.DailyDeliveryArea) areaResponse {
	return areaResponse{
		ID:          area.ID,
		Name:        area.Name,
		DeliveryFee: area.DeliveryFee,
		IsActive:    area.IsActive,
	}
}

func toSheetResponse(view *dailymenudto.SheetView) sheetResponse {
	areas := make([]areaResponse, len(view.DeliveryAreas))
	for i, area := range view.DeliveryAreas {
		areas[i] = toAreaResponse(area)
	}
	return sheetResponse{
		Menu:           toMenuResponse(view.Menu),
		Items:          toItemResponses(view.Items),
		DeliveryAreas:  areas,
		DateClass:      view.DateClass,
		OrderingClosed: view.OrderingClosed,
	}
}

func toTemplateResponse(template *dailymenudto.Template) templateResponse {
	if template == nil {
		// "No recent template" is a signal for the owner UI, not an error.
		return templateResponse{Found: false, Items: []itemResponse{}}
	}
	return templateResponse{
		Found:      true,
		SourceDate: template.SourceDate,
		Items:      toItemResponses(template.Items),
	}
}

func toStoreResponse(store *domain.Store) storeResponse {
	return storeResponse{
		ID:             store.ID,
		Name:           store.Name,
		Description:    store.Description,
		Category:       store.Category,
		IsActive:       store.IsActive,
		OrderCutoff:    store.OrderCutoff,
		MinOrderAmount: store.MinOrderAmount,
	}
}

func toStoreResponses(stores []*domain.Store) []storeResponse {
	out := make([]storeResponse, len(stores))
	for i, store := range stores {
		out[i] = toStoreResponse(store)
	}
	return out
}

func toCatalogResponses(menus []*domain.Menu) []catalogResponse {
	out := make([]catalogResponse, len(menus))
	for i, menu := range menus {
		out[i] = catalogResponse{
			ID:          menu.ID,
			Name:        menu.Name,
			Description: menu.Description,
			Price:       menu.Price,
			IsAvailable: menu.IsAvailable,
		}
	}
	return out
}
