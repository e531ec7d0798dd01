package models

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate creates the tables owned by this service. The radacct table is
// managed by FreeRADIUS and is intentionally not migrated here.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	return db.AutoMigrate(&AgendaEvent{})
}
