package config

import (
	"newsroom-api/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Credentials of the publisher account seeded on first start.
const (
	SeedPublisherEmail    = "publisher@newsroom.local"
	SeedPublisherPassword = "publisher123"
)

// InitDB opens the database handle, verifies connectivity, synchronizes the
// schema and seeds the default publisher. A failed connectivity check is
// logged but not fatal: the process keeps serving and individual requests
// fail until the database comes back.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		log.Error().Err(err).Msg("database unreachable, continuing without schema sync")
		return db, nil
	}
	log.Info().Str("host", cfg.DB.Host).Str("database", cfg.DB.Name).Msg("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedPublisher(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate synchronizes the schema without destructive drops.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Content{})
}

// SeedPublisher creates the default publisher account when no publisher-role
// user exists yet. Idempotent per process start via the existence query.
func SeedPublisher(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RolePublisher).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedPublisherPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	publisher := &models.User{
		Username: "publisher",
		Email:    SeedPublisherEmail,
		Password: string(hashed),
		Role:     models.RolePublisher,
		Profile:  map[string]interface{}{},
	}
	if err := db.Create(publisher).Error; err != nil {
		return err
	}

	log.Info().Str("email", SeedPublisherEmail).Msg("seeded default publisher account")
	return nil
}
