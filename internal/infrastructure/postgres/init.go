package postgres

import (
	"log"

	"github.com/jawirlabs/topup-order-service/internal/config"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.TopupConfig) *gorm.DB {
	dsn := cfg.TopupDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TransactionModel{}, &models.UserModel{})

	return db
}
