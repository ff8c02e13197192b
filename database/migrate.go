package database

import (
	"cardlink_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates/updates the three tables this service owns:
// users, cards and analytics_events. No derived tables exist.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.AnalyticsEvent{},
	)
}
