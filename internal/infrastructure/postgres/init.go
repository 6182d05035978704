package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/khyunjo1/paytalk-menu-service/internal/config"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.MenuConfig) *gorm.DB {
	dsn := cfg.MenuDB.Dsn
	// TranslateError turns the driver's duplicate-key error into
	// gorm.ErrDuplicatedKey, which the repository maps to ErrSheetExists.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.StoreModel{},
		&models.StoreDeliveryAreaModel{},
		&models.MenuModel{},
		&models.DailyMenuModel{},
		&models.DailyMenuItemModel{},
		&models.DailyDeliveryAreaModel{},
	)

	return db
}
