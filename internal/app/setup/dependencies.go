package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/khyunjo1/paytalk-menu-service/internal/config"
	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/cache"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/kafka"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/metrics"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/mappers"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/repository"
	"github.com/khyunjo1/paytalk-menu-service/internal/usecase"
)

type Dependencies struct {
	Config    *config.MenuConfig
	DB        *gorm.DB
	Publisher *kafka.MenuEventPublisher
	Cache     *cache.TTLCache
	Metrics   *metrics.MenuMetrics

	MenuRepo  domain.DailyMenuRepository
	StoreRepo *repository.DefaultStoreRepository

	MenuUsecase      usecase.DailyMenuUsecase
	TemplateResolver usecase.TemplateResolver
	StoreUsecase     usecase.StoreUsecase
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	pub := kafka.NewMenuEventPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		cfg.KafkaService.Topic,
	)

	menuRepo := repository.NewDefaultDailyMenuRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)

	ttlCache := cache.NewTTLCache()
	menuMetrics := metrics.NewMenuMetrics()
	mappers.Metrics = menuMetrics
	clock := domain.RealClock{}

	menuUC := usecase.NewDefaultDailyMenuUsecase(menuRepo, storeRepo, storeRepo, clock, pub, menuMetrics)
	resolver := usecase.NewDefaultTemplateResolver(menuRepo, menuUC, pub, menuMetrics)
	storeUC := usecase.NewDefaultStoreUsecase(storeRepo, storeRepo, ttlCache, menuMetrics)

	return &Dependencies{
		Config:           cfg,
		DB:               db,
		Publisher:        pub,
		Cache:            ttlCache,
		Metrics:          menuMetrics,
		MenuRepo:         menuRepo,
		StoreRepo:        storeRepo,
		MenuUsecase:      menuUC,
		TemplateResolver: resolver,
		StoreUsecase:     storeUC,
	}, nil
}
