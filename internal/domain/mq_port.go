package domain

// MenuEvent is published on sheet lifecycle transitions.
type MenuEvent struct {
	EventType   string `json:"event_type"`
	StoreID     string `json:"store_id"`
	DailyMenuID string `json:"daily_menu_id"`
	MenuDate    string `json:"menu_date"`
	SourceDate  string `json:"source_date,omitempty"`
	ItemCount   int    `json:"item_count,omitempty"`
}

const (
	EventSheetCreated     = "menu.sheet.created"
	EventSheetDeactivated = "menu.sheet.deactivated"
	EventTemplateApplied  = "menu.template.applied"
)

type PublisherPort interface {
	PublishMenuEvent(event MenuEvent) error
}
