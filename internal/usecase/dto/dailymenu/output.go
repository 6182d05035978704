package dailymenudto

import "github.com/khyunjo1/paytalk-menu-service/internal/domain"

// SheetView is the buyer-facing read model: the sheet plus the window
// evaluator's verdict for it.
type SheetView struct {
	Menu           *domain.DailyMenu
	Items          []*domain.DailyMenuItem
	DeliveryAreas  []*domain.DailyDeliveryArea
	DateClass      string
	OrderingClosed bool
}

// Template is the result of a backward search for a seedable prior sheet.
// A nil *Template from the resolver means "no template available".
type Template struct {
	SourceDate string
	Items      []*domain.DailyMenuItem
}

func (t *Template) MenuIDs() []string {
	ids := make([]string, 0, len(t.Items))
	for _, item := range t.Items {
		ids = append(ids, item.MenuID)
	}
	return ids
}
