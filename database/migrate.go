// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"gorm.io/gorm"
)

// RunMigrations runs all database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.UserMaster{},
		&models.Specialty{},
		&models.Orientation{},
		&models.Status{},
		&models.Team{},
		&models.TeamMember{},
		&models.TestResult{},
		&models.Quiz{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	if err := SeedSpecialties(db); err != nil {
		log.Fatalf("❌ Failed to seed specialty vocabulary: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

// SeedSpecialties inserts the three scoring categories when the vocabulary
// table is empty. Additional specialties are managed directly in the DB.
func SeedSpecialties(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Specialty{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Specialty{
		{Specialty: "Biz"},
		{Specialty: "Design"},
		{Specialty: "Tech"},
	}
	return db.Create(&defaults).Error
}
