package models

import (
	"time"
)

type Adoption struct {
	AdoptionID    uint      `gorm:"column:adoption_id;primaryKey;autoIncrement" json:"adoption_id"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	Age           string    `gorm:"column:age;size:50" json:"age"`
	Gender        string    `gorm:"column:gender;size:10;default:unknown" json:"gender"` // male, female, unknown
	Type          string    `gorm:"column:type;size:10" json:"type"`                     // dog, cat, other
	MedicalStatus string    `gorm:"column:medical_status;size:255" json:"medical_status"`
	RescueStory   string    `gorm:"column:rescue_story;type:text" json:"rescue_story"`
	PhotoURL      string    `gorm:"column:photo_url;size:255" json:"photo_url"`
	FollowUp      string    `gorm:"column:follow_up;type:text" json:"follow_up"`
	PostedBy      uint      `gorm:"column:posted_by;not null" json:"posted_by"`
	Status        string    `gorm:"column:status;size:20;default:available" json:"status"` // available, pending, adopted, removed
	AdoptedBy     *uint     `gorm:"column:adopted_by" json:"adopted_by"`
	DatePosted    time.Time `gorm:"column:date_posted;autoCreateTime" json:"date_posted"`
	Location      string    `gorm:"column:location;size:255" json:"location"`

	Poster  *User `gorm:"foreignKey:PostedBy;references:UserID;constraint:OnDelete:CASCADE" json:"Poster,omitempty"`
	Adopter *User `gorm:"foreignKey:AdoptedBy;references:UserID;constraint:OnDelete:SET NULL" json:"Adopter,omitempty"`
}

func (Adoption) TableName() string {
	return "adoptions"
}
