package models

import (
	"time"
)

// Incident rows are read and written through raw parameterized SQL in the
// incidents controller; the struct exists for migration, the delete path and
// the foreign key constraints.
type Incident struct {
	IncidentID     uint      `gorm:"column:incident_id;primaryKey;autoIncrement" json:"incident_id"`
	Category       string    `gorm:"column:category;size:30" json:"category"` // attack, injury, rescue_needed, harassment, neglect, disturbance, other
	Location       string    `gorm:"column:location;size:255" json:"location"`
	Landmark       string    `gorm:"column:landmark;size:255" json:"landmark"`
	DateReported   time.Time `gorm:"column:date_reported;autoCreateTime" json:"date_reported"`
	Email          string    `gorm:"column:email;size:100" json:"email"`
	Phone          string    `gorm:"column:phone;size:20" json:"phone"`
	Description    string    `gorm:"column:description;type:text" json:"description"`
	AnimalIdentity string    `gorm:"column:animal_identity;size:150" json:"animal_identity"`
	PhotoURL       string    `gorm:"column:photo_url;size:255" json:"photo_url"`
	Urgency        string    `gorm:"column:urgency;size:20;default:medium" json:"urgency"` // low, medium, high, critical
	PreferredAction string   `gorm:"column:preferred_action;size:30" json:"preferred_action"`
	AssignedTo     *uint     `gorm:"column:assigned_to" json:"assigned_to"`
	PostedBy       *uint     `gorm:"column:posted_by" json:"posted_by"` // nil when reported anonymously
	Status         string    `gorm:"column:status;size:20;default:pending" json:"status"` // pending, acknowledged, in_progress, resolved, dismissed
	Remarks        string    `gorm:"column:remarks;type:text" json:"remarks"`

	Poster   *User `gorm:"foreignKey:PostedBy;references:UserID;constraint:OnDelete:CASCADE" json:"Poster,omitempty"`
	Assignee *User `gorm:"foreignKey:AssignedTo;references:UserID;constraint:OnDelete:SET NULL" json:"Assignee,omitempty"`
}

func (Incident) TableName() string {
	return "incidents"
}
