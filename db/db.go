package db

import (
	"fmt"
	"log"
	"os"

	"spacerental/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Space{},
		&models.Rental{},
		&models.Assessment{},
		&models.Favorite{},
		&models.ViewHistory{},
		&models.Payment{},
	); err != nil {
		return err
	}

	// Candidate scan for the conflict check walks (space, date range).
	if err := db.Exec(`
	  CREATE INDEX IF NOT EXISTS rentals_space_dates
	  ON rentals (space_id, start_date, end_date);
	`).Error; err != nil {
		return err
	}

	// Ring-buffer eviction reads the oldest view per user.
	if err := db.Exec(`
	  CREATE INDEX IF NOT EXISTS view_history_user_viewedat
	  ON view_history (user_id, viewed_at);
	`).Error; err != nil {
		return err
	}

	return nil
}
