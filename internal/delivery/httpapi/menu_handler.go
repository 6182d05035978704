package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/usecase"
	dailymenudto "github.com/khyunjo1/paytalk-menu-service/internal/usecase/dto/dailymenu"
)

type MenuHandler struct {
	MenuUC   usecase.DailyMenuUsecase
	Resolver usecase.TemplateResolver
	StoreUC  usecase.StoreUsecase
	Clock    domain.Clock
}

func NewMenuHandler(
	menuUC usecase.DailyMenuUsecase,
	resolver usecase.TemplateResolver,
	storeUC usecase.StoreUsecase,
	clock domain.Clock) *MenuHandler {

	return &MenuHandler{
		MenuUC:   menuUC,
		Resolver: resolver,
		StoreUC:  storeUC,
		Clock:    clock,
	}
}

func (h *MenuHandler) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/owners/:ownerId/stores", h.listStores)
	api.GET("/stores/:storeId", h.getStore)
	api.GET("/stores/:storeId/catalog", h.getCatalog)

	api.GET("/stores/:storeId/menus/:date", h.getSheet)
	api.PATCH("/stores/:storeId/menus/:date", h.updateSettings)
	api.PUT("/stores/:storeId/menus/:date/items", h.replaceItems)
	api.PATCH("/stores/:storeId/menus/:date/items/:menuId", h.setSoldOut)
	api.PATCH("/stores/:storeId/menus/:date/areas/:areaId", h.updateArea)
	api.GET("/stores/:storeId/menus/:date/template", h.previewTemplate)
	api.POST("/stores/:storeId/menus/:date/template", h.applyTemplate)
}

// resolveDate maps the "today"/"tomorrow"/"yesterday" aliases onto concrete
// business-local dates so the share URL and the conveniences hit one handler.
func (h *MenuHandler) resolveDate(raw string) (string, error) {
	today := domain.FormatDate(h.Clock.Now())
	switch raw {
	case "today":
		return today, nil
	case "tomorrow":
		return domain.ShiftDate(today, 1)
	case "yesterday":
		return domain.ShiftDate(today, -1)
	default:
		if _, err := domain.ParseDate(raw); err != nil {
			return "", err
		}
		return raw, nil
	}
}

func (h *MenuHandler) listStores(c echo.Context) error {
	stores, err := h.StoreUC.GetStoresByOwnerID(c.Param("ownerId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toStoreResponses(stores))
}

func (h *MenuHandler) getStore(c echo.Context) error {
	store, err := h.StoreUC.GetStoreByID(c.Param("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toStoreResponse(store))
}

func (h *MenuHandler) getCatalog(c echo.Context) error {
	menus, err := h.StoreUC.GetCatalog(c.Param("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toCatalogResponses(menus))
}

func (h *MenuHandler) getSheet(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	view, err := h.MenuUC.GetSheetView(c.Param("storeId"), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toSheetResponse(view))
}

func (h *MenuHandler) updateSettings(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	menu, err := h.MenuUC.UpdateSettings(&dailymenudto.UpdateSettingsInput{
		StoreID:        c.Param("storeId"),
		MenuDate:       date,
		Title:          req.Title,
		Description:    req.Description,
		IsActive:       req.IsActive,
		OrderCutoff:    req.OrderCutoff,
		PickupWindow:   req.PickupWindow,
		DeliverySlots:  req.DeliverySlots,
		MinOrderAmount: req.MinOrderAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMenuResponse(menu))
}

func (h *MenuHandler) replaceItems(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	var req replaceItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	items, err := h.MenuUC.ReplaceItems(&dailymenudto.ReplaceItemsInput{
		StoreID:  c.Param("storeId"),
		MenuDate: date,
		MenuIDs:  req.MenuIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *MenuHandler) setSoldOut(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	var req soldOutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err = h.MenuUC.SetItemSoldOut(&dailymenudto.SetSoldOutInput{
		StoreID:  c.Param("storeId"),
		MenuDate: date,
		MenuID:   c.Param("menuId"),
		SoldOut:  req.SoldOut,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MenuHandler) updateArea(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	var req updateAreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	area, err := h.MenuUC.UpdateDeliveryArea(&dailymenudto.UpdateAreaInput{
		StoreID:     c.Param("storeId"),
		MenuDate:    date,
		AreaID:      c.Param("areaId"),
		Name:        req.Name,
		DeliveryFee: req.DeliveryFee,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAreaResponse(area))
}

func (h *MenuHandler) previewTemplate(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	lookback := usecase.DefaultTemplateLookbackDays
	if c.QueryParam("scope") == "yesterday" {
		lookback = 1
	}

	template, err := h.Resolver.FindTemplate(c.Param("storeId"), date, lookback)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toTemplateResponse(template))
}

func (h *MenuHandler) applyTemplate(c echo.Context) error {
	date, err := h.resolveDate(c.Param("date"))
	if err != nil {
		return writeError(c, err)
	}

	template, err := h.Resolver.ApplyTemplate(c.Param("storeId"), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toTemplateResponse(template))
}

// writeError maps the domain taxonomy onto HTTP statuses. An upstream outage
// is told apart from "no menu" so the storefront can show "menu unavailable"
// instead of an empty sheet.
func writeError(c echo.Context, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: vErr.Error(), Field: vErr.Field})
	}
	if errors.Is(err, domain.ErrInvalidDate) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date", Field: "date"})
	}
	if errors.Is(err, domain.ErrStoreNotFound) ||
		errors.Is(err, domain.ErrMenuNotFound) ||
		errors.Is(err, domain.ErrItemNotFound) ||
		errors.Is(err, domain.ErrAreaNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		slog.Error("menu storage unavailable", "op", upstream.Op, "error", upstream.Err.Error())
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "menu unavailable"})
	}

	slog.Error("unhandled menu error", "error", err.Error())
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
