package database

import (
	"github.com/shaiiram/website1000-2000/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Experience{},
		&models.Booking{},
	)
}
