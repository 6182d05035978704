package usecase

import (
	"fmt"
	"time"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/cache"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/metrics"
)

const (
	storeListTTL = 5 * time.Minute

	storeListKeyFormat  = "stores:owner:%s"
	storeListKeyPattern = `^stores:owner:`
)

type StoreUsecase interface {
	GetStoreByID(storeID string) (*domain.Store, error)
	GetStoresByOwnerID(ownerID string) ([]*domain.Store, error)
	GetCatalog(storeID string) ([]*domain.Menu, error)
	// InvalidateStoreLists drops every cached owner store list. Writers call
	// it after any change to the store collection, before returning.
	InvalidateStoreLists()
}

type DefaultStoreUsecase struct {
	Settings domain.SettingsStore
	Catalog  domain.MenuCatalog
	Cache    *cache.TTLCache
	Metrics  *metrics.MenuMetrics
}

func NewDefaultStoreUsecase(
	settings domain.SettingsStore,
	catalog domain.MenuCatalog,
	ttlCache *cache.TTLCache,
	menuMetrics *metrics.MenuMetrics) *DefaultStoreUsecase {

	return &DefaultStoreUsecase{
		Settings: settings,
		Catalog:  catalog,
		Cache:    ttlCache,
		Metrics:  menuMetrics,
	}
}

func (uc *DefaultStoreUsecase) GetStoreByID(storeID string) (*domain.Store, error) {
	if storeID == "" {
		return nil, &domain.ValidationError{Field: "storeId"}
	}
	return uc.Settings.GetStoreByID(storeID)
}

func (uc *DefaultStoreUsecase) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	if ownerID == "" {
		return nil, &domain.ValidationError{Field: "ownerId"}
	}

	key := fmt.Sprintf(storeListKeyFormat, ownerID)
	if uc.Cache != nil {
		if cached, ok := uc.Cache.Get(key); ok {
			if stores, ok := cached.([]*domain.Store); ok {
				uc.Metrics.RecordCacheHit("stores")
				return stores, nil
			}
		}
		uc.Metrics.RecordCacheMiss("stores")
	}

	stores, err := uc.Settings.GetStoresByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		uc.Cache.Set(key, stores, storeListTTL)
	}
	return stores, nil
}

func (uc *DefaultStoreUsecase) GetCatalog(storeID string) ([]*domain.Menu, error) {
	if storeID == "" {
		return nil, &domain.ValidationError{Field: "storeId"}
	}
	return uc.Catalog.GetMenusByStoreID(storeID)
}

func (uc *DefaultStoreUsecase) InvalidateStoreLists() {
	if uc.Cache == nil {
		return
	}
	// The pattern is a compile-time constant, the error path is unreachable.
	_ = uc.Cache.DeleteByPattern(storeListKeyPattern)
}
