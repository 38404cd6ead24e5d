package utils

import "gorm.io/gorm"

// The one shared *gorm.DB handle, set from main during startup and read by
// every controller through GetDB. Tests that exercise handlers point it at
// an in-memory database instead.
var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
