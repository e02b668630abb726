package models

import (
	"time"
)

type Report struct {
	ReportID     uint      `gorm:"column:report_id;primaryKey;autoIncrement" json:"report_id"`
	Title        string    `gorm:"column:title;size:150;not null" json:"title"`
	Priority     string    `gorm:"column:priority;size:20;default:medium" json:"priority"` // low, medium, high, urgent
	Location     string    `gorm:"column:location;size:255;not null" json:"location"`
	Landmark     string    `gorm:"column:landmark;size:255" json:"landmark"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	PhotoURL     string    `gorm:"column:photo_url;size:255" json:"photo_url"`
	Category     string    `gorm:"column:category;size:30;default:other" json:"category"`
	Visibility   string    `gorm:"column:visibility;size:10;default:public" json:"visibility"`
	Status       string    `gorm:"column:status;size:20;default:pending" json:"status"` // pending, reviewed, in_progress, resolved, dismissed
	AssignedTo   *uint     `gorm:"column:assigned_to" json:"assigned_to"`
	PostedBy     *uint     `gorm:"column:posted_by" json:"posted_by"` // nil means anonymous citizen submission
	DateReported time.Time `gorm:"column:date_reported;autoCreateTime" json:"date_reported"`

	Poster   *User `gorm:"foreignKey:PostedBy;references:UserID;constraint:OnDelete:CASCADE" json:"Poster,omitempty"`
	Assignee *User `gorm:"foreignKey:AssignedTo;references:UserID;constraint:OnDelete:SET NULL" json:"Assignee,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
