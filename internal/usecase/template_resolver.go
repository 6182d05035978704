package usecase

import (
	"errors"
	"log/slog"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/metrics"
	dailymenudto "github.com/khyunjo1/paytalk-menu-service/internal/usecase/dto/dailymenu"
)

// DefaultTemplateLookbackDays bounds the backward search for a seedable prior
// sheet. A week covers the usual cadence of a store that skips weekends.
const DefaultTemplateLookbackDays = 7

type TemplateResolver interface {
	// FindTemplate returns the nearest prior sheet with at least one item, or
	// nil when no sheet within the horizon qualifies. It never creates sheets.
	FindTemplate(storeID, beforeDate string, maxLookbackDays int) (*dailymenudto.Template, error)
	FindYesterdayTemplate(storeID, beforeDate string) (*dailymenudto.Template, error)
	// ApplyTemplate seeds the (store, date) sheet from the nearest template.
	// A nil result means nothing was found and the sheet was left untouched.
	ApplyTemplate(storeID, menuDate string) (*dailymenudto.Template, error)
}

type DefaultTemplateResolver struct {
	MenuRepo  domain.DailyMenuRepository
	MenuUC    DailyMenuUsecase
	Publisher domain.PublisherPort
	Metrics   *metrics.MenuMetrics
}

func NewDefaultTemplateResolver(
	menuRepo domain.DailyMenuRepository,
	menuUC DailyMenuUsecase,
	publisher domain.PublisherPort,
	menuMetrics *metrics.MenuMetrics) *DefaultTemplateResolver {

	return &DefaultTemplateResolver{
		MenuRepo:  menuRepo,
		MenuUC:    menuUC,
		Publisher: publisher,
		Metrics:   menuMetrics,
	}
}

func (r *DefaultTemplateResolver) FindTemplate(storeID, beforeDate string, maxLookbackDays int) (*dailymenudto.Template, error) {
	if storeID == "" {
		return nil, &domain.ValidationError{Field: "storeId"}
	}
	if _, err := domain.ParseDate(beforeDate); err != nil {
		return nil, err
	}
	if maxLookbackDays <= 0 {
		maxLookbackDays = DefaultTemplateLookbackDays
	}

	horizon, err := domain.ShiftDate(beforeDate, -maxLookbackDays)
	if err != nil {
		return nil, err
	}

	// Walk existing sheets newest-first via the repository's descending
	// lookup; dates with no sheet are skipped without creating one.
	cursor := beforeDate
	for {
		menu, err := r.MenuRepo.GetMostRecentBefore(storeID, cursor)
		if errors.Is(err, domain.ErrMenuNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		if menu.MenuDate < horizon {
			break
		}

		items, err := r.MenuRepo.GetItems(menu.ID)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			r.Metrics.RecordTemplateHit(storeID, daysBetween(menu.MenuDate, beforeDate))
			return &dailymenudto.Template{SourceDate: menu.MenuDate, Items: items}, nil
		}

		cursor = menu.MenuDate
	}

	r.Metrics.RecordTemplateMiss(storeID)
	return nil, nil
}

// FindYesterdayTemplate is the degenerate single-day case backing the
// "yesterday as read-only preview" surface.
func (r *DefaultTemplateResolver) FindYesterdayTemplate(storeID, beforeDate string) (*dailymenudto.Template, error) {
	return r.FindTemplate(storeID, beforeDate, 1)
}

func (r *DefaultTemplateResolver) ApplyTemplate(storeID, menuDate string) (*dailymenudto.Template, error) {
	template, err := r.FindTemplate(storeID, menuDate, DefaultTemplateLookbackDays)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}

	items, err := r.MenuUC.ReplaceItems(&dailymenudto.ReplaceItemsInput{
		StoreID:  storeID,
		MenuDate: menuDate,
		MenuIDs:  template.MenuIDs(),
	})
	if err != nil {
		return nil, err
	}

	if r.Publisher != nil {
		event := domain.MenuEvent{
			EventType:  domain.EventTemplateApplied,
			StoreID:    storeID,
			MenuDate:   menuDate,
			SourceDate: template.SourceDate,
			ItemCount:  len(items),
		}
		if len(items) > 0 {
			event.DailyMenuID = items[0].DailyMenuID
		}
		if err := r.Publisher.PublishMenuEvent(event); err != nil {
			slog.Warn("template event publish failed",
				"store_id", storeID, "menu_date", menuDate, "error", err.Error())
		}
	}

	return &dailymenudto.Template{SourceDate: template.SourceDate, Items: items}, nil
}

func daysBetween(earlier, later string) int {
	e, err := domain.ParseDate(earlier)
	if err != nil {
		return 0
	}
	l, err := domain.ParseDate(later)
	if err != nil {
		return 0
	}
	return int(l.Sub(e).Hours() / 24)
}
