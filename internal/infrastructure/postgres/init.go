package postgres

import (
	"log"

	"github.com/wetrack/wetrack-backend/internal/config"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.WetrackConfig) *gorm.DB {
	dsn := cfg.TrackerDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.FixedCostModel{},
		&models.ExpenseModel{},
		&models.ConversionModel{},
		&models.ExchangeRateModel{},
	); err != nil {
		log.Fatalf("failed to run automigrations: %v\n", err.Error())
	}

	return db
}
