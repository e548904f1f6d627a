package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newsorbit-api/models"
)

// InitDB opens the PostgreSQL connection and migrates the schema.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Article{}, &models.SiteConfig{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

// SeedMasterAdmin creates the distinguished admin account if it does not
// exist yet. The account is created active with posting rights and can never
// be blocked.
func SeedMasterAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.Master.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Master.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     cfg.Master.Name,
		Email:    cfg.Master.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Status:   models.UserStatusActive,
		CanPost:  true,
	}

	return db.Create(admin).Error
}
