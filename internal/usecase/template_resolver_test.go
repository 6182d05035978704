package usecase

import (
	"testing"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
)

func seedSheet(repo *fakeMenuRepo, storeID, date string, menuIDs ...string) *domain.DailyMenu {
	menu := &domain.DailyMenu{
		ID:       "sheet-" + date,
		StoreID:  storeID,
		MenuDate: date,
		IsActive: true,
	}
	repo.menus[menuKey(storeID, date)] = menu
	for i, id := range menuIDs {
		repo.items[menu.ID] = append(repo.items[menu.ID], &domain.DailyMenuItem{
			ID:          menu.ID + "-item",
			DailyMenuID: menu.ID,
			MenuID:      id,
			SoldOut:     i%2 == 1,
		})
	}
	return menu
}

func newTestResolver(t *testing.T) (*DefaultTemplateResolver, *fakeMenuRepo, *fakePublisher) {
	t.Helper()
	uc, repo, _, pub := newTestUsecase(t, "2024-06-10 09:00")
	resolver := NewDefaultTemplateResolver(repo, uc, pub, nil)
	return resolver, repo, pub
}

func TestFindTemplateReturnsNearestNonEmptySheet(t *testing.T) {
	resolver, repo, _ := newTestResolver(t)
	seedSheet(repo, "store-1", "2024-06-09") // exists but empty
	seedSheet(repo, "store-1", "2024-06-07", "menu-a", "menu-b")
	seedSheet(repo, "store-1", "2024-06-05", "menu-a")

	template, err := resolver.FindTemplate("store-1", "2024-06-10", DefaultTemplateLookbackDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template == nil {
		t.Fatal("expected a template")
	}
	if template.SourceDate != "2024-06-07" {
		t.Fatalf("expected nearest non-empty 2024-06-07, got %s", template.SourceDate)
	}
	if len(template.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(template.Items))
	}
}

func TestFindTemplateRespectsHorizon(t *testing.T) {
	resolver, repo, _ := newTestResolver(t)
	// Only candidate is 8 days back, one past the default horizon.
	seedSheet(repo, "store-1", "2024-06-02", "menu-a")

	template, err := resolver.FindTemplate("store-1", "2024-06-10", DefaultTemplateLookbackDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template != nil {
		t.Fatalf("sheet beyond the horizon must not qualify, got %s", template.SourceDate)
	}

	// Exactly at the horizon still qualifies.
	seedSheet(repo, "store-1", "2024-06-03", "menu-a")
	template, err = resolver.FindTemplate("store-1", "2024-06-10", DefaultTemplateLookbackDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template == nil || template.SourceDate != "2024-06-03" {
		t.Fatalf("expected 2024-06-03 at the horizon edge, got %+v", template)
	}
}

func TestFindTemplateNeverReturnsSameOrLaterDate(t *testing.T) {
	resolver, repo, _ := newTestResolver(t)
	seedSheet(repo, "store-1", "2024-06-10", "menu-a")
	seedSheet(repo, "store-1", "2024-06-12", "menu-b")

	template, err := resolver.FindTemplate("store-1", "2024-06-10", DefaultTemplateLookbackDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template != nil {
		t.Fatalf("sheets dated >= beforeDate must not qualify, got %s", template.SourceDate)
	}
}

func TestFindTemplateMissReturnsNilNotError(t *testing.T) {
	resolver, _, _ := newTestResolver(t)

	template, err := resolver.FindTemplate("store-1", "2024-06-10", DefaultTemplateLookbackDays)
	if err != nil {
		t.Fatalf("a miss is not an error, got %v", err)
	}
	if template != nil {
		t.Fatalf("expected nil template, got %+v", template)
	}
}

func TestFindTemplateDoesNotCreateSheets(t *testing.T) {
	resolver, repo, _ := newTestResolver(t)
	seedSheet(repo, "store-1", "2024-06-09")

	if _, err := resolver.FindTemplate("store-1", "2024-06-10", DefaultTemplateLookbackDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("template search must not create sheets, got %d creates", repo.createCalls)
	}
	if len(repo.menus) != 1 {
		t.Fatalf("expected sheet count unchanged, got %d", len(repo.menus))
	}
}

func TestFindYesterdayTemplate(t *testing.T) {
	resolver, repo, _ := newTestResolver(t)
	seedSheet(repo, "store-1", "2024-06-08", "menu-a")

	// 06-08 is two days before 06-10: out of the single-day window.
	template, err := resolver.FindYesterdayTemplate("store-1", "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template != nil {
		t.Fatalf("expected nil, got %s", template.SourceDate)
	}

	seedSheet(repo, "store-1", "2024-06-09", "menu-b")
	template, err = resolver.FindYesterdayTemplate("store-1", "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template == nil || template.SourceDate != "2024-06-09" {
		t.Fatalf("expected yesterday's sheet, got %+v", template)
	}
	if repo.createCalls != 0 {
		t.Fatal("yesterday preview must not create sheets")
	}
}

func TestFindTemplateValidation(t *testing.T) {
	resolver, _, _ := newTestResolver(t)

	if _, err := resolver.FindTemplate("", "2024-06-10", 7); err == nil {
		t.Fatal("expected validation error for empty store id")
	}
	if _, err := resolver.FindTemplate("store-1", "junk", 7); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestApplyTemplateSeedsSheet(t *testing.T) {
	resolver, repo, pub := newTestResolver(t)
	seedSheet(repo, "store-1", "2024-06-07", "menu-a", "menu-b")

	template, err := resolver.ApplyTemplate("store-1", "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template == nil {
		t.Fatal("expected applied template")
	}
	if template.SourceDate != "2024-06-07" {
		t.Fatalf("expected source 2024-06-07, got %s", template.SourceDate)
	}
	if len(template.Items) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(template.Items))
	}

	target, err := repo.GetDailyMenu("store-1", "2024-06-10")
	if err != nil {
		t.Fatalf("target sheet should now exist: %v", err)
	}
	if len(repo.items[target.ID]) != 2 {
		t.Fatalf("expected items on the target sheet, got %d", len(repo.items[target.ID]))
	}

	found := false
	for _, event := range pub.events {
		if event.EventType == domain.EventTemplateApplied {
			found = true
			if event.SourceDate != "2024-06-07" || event.ItemCount != 2 {
				t.Fatalf("unexpected event payload: %+v", event)
			}
		}
	}
	if !found {
		t.Fatal("expected template.applied event")
	}
}

func TestApplyTemplateNoCandidateIsNoOp(t *testing.T) {
	resolver, repo, _ := newTestResolver(t)

	template, err := resolver.ApplyTemplate("store-1", "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template != nil {
		t.Fatalf("expected nil, got %+v", template)
	}
	if repo.createCalls != 0 {
		t.Fatal("a failed search must leave storage untouched")
	}
}
