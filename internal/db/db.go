package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/config"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Region{},
		&models.City{},
		&models.User{},
		&models.Supplier{},
		&models.Pet{},
		&models.Address{},
		&models.Service{},
		&models.Product{},
		&models.PaymentMethod{},
		&models.Appointment{},
		&models.Result{},
		&models.Treatment{},
		&models.Order{},
		&models.OrderItem{},
		&models.Receipt{},
		&models.Message{},
		&models.Block{},
		&models.Report{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
