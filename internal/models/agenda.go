package models

import (
	"time"
)

// AgendaEvent represents a scheduled back-office activity (technician visit,
// installation, reminder). Unlike radacct, this table is owned and migrated
// by this service.
type AgendaEvent struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"size:200" json:"location"`
	StartsAt    time.Time  `gorm:"not null;index" json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Priority    bool       `gorm:"default:false" json:"priority"`
	Done        bool       `gorm:"default:false" json:"done"`
	Partial     bool       `gorm:"default:false" json:"partial"`
	Cancelled   bool       `gorm:"default:false" json:"cancelled"`
	TimeSet     bool       `gorm:"default:true" json:"time_set"` // false when only the day is known
	CreatedBy   string     `gorm:"size:100;index" json:"created_by"`
	Company     string     `gorm:"size:100" json:"company"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (AgendaEvent) TableName() string {
	return "agenda_events"
}
