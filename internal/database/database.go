package database

import (
	"log"

	"churchsite/config"
	"churchsite/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.StaffUser{},
		&models.Event{},
		&models.Sermon{},
		&models.BlogPost{},
		&models.PrayerRequest{},
		&models.ContactMessage{},
		&models.Donation{},
		&models.Ministry{},
	)
}

// SeedStaff creates a default console account when no staff user exists.
func SeedStaff(db *gorm.DB) {
	var count int64
	db.Model(&models.StaffUser{}).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("change-me"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed staff: %v", err)
		return
	}
	u := &models.StaffUser{
		Username:     "admin",
		Email:        "admin@localhost",
		PasswordHash: string(hash),
	}
	if err := db.Create(u).Error; err != nil {
		log.Printf("seed staff: %v", err)
		return
	}
	log.Printf("seeded staff user %q with default password; change it", u.Username)
}
