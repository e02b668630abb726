package models

import (
	"time"
)

type Event struct {
	EventID     uint      `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Location    string    `gorm:"column:location;size:255" json:"location"`
	EventDate   time.Time `gorm:"column:event_date;not null" json:"event_date"`
	PostedBy    uint      `gorm:"column:posted_by;not null" json:"posted_by"`
	Status      string    `gorm:"column:status;size:20;default:upcoming" json:"status"` // upcoming, active, completed, cancelled
	Category    string    `gorm:"column:category;size:20;default:other" json:"category"`

	Poster *User `gorm:"foreignKey:PostedBy;references:UserID;constraint:OnDelete:CASCADE" json:"Poster,omitempty"`
}

func (Event) TableName() string {
	return "events"
}
