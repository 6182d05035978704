package usecase

import (
	"testing"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/cache"
)

func TestGetStoresByOwnerIDCachesList(t *testing.T) {
	settings := newFakeSettings()
	settings.byOwner["owner-1"] = []*domain.Store{
		{ID: "store-1", OwnerID: "owner-1", Name: "Kimbap Heaven"},
	}
	uc := NewDefaultStoreUsecase(settings, &fakeCatalog{}, cache.NewTTLCache(), nil)

	first, err := uc.GetStoresByOwnerID("owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.GetStoresByOwnerID("owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one store, got %d then %d", len(first), len(second))
	}
	if settings.listCalls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", settings.listCalls)
	}
}

func TestInvalidateStoreListsForcesRefetch(t *testing.T) {
	settings := newFakeSettings()
	settings.byOwner["owner-1"] = []*domain.Store{{ID: "store-1", OwnerID: "owner-1"}}
	uc := NewDefaultStoreUsecase(settings, &fakeCatalog{}, cache.NewTTLCache(), nil)

	if _, err := uc.GetStoresByOwnerID("owner-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.InvalidateStoreLists()
	if _, err := uc.GetStoresByOwnerID("owner-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.listCalls != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", settings.listCalls)
	}
}

func TestStoreUsecaseValidation(t *testing.T) {
	uc := NewDefaultStoreUsecase(newFakeSettings(), &fakeCatalog{}, nil, nil)

	if _, err := uc.GetStoresByOwnerID(""); err == nil {
		t.Fatal("expected validation error for empty owner id")
	}
	if _, err := uc.GetStoreByID(""); err == nil {
		t.Fatal("expected validation error for empty store id")
	}
	if _, err := uc.GetCatalog(""); err == nil {
		t.Fatal("expected validation error for empty store id")
	}
}
