package models

import (
	"time"
)

type FeedLog struct {
	FeedID   uint      `gorm:"column:feed_id;primaryKey;autoIncrement" json:"feed_id"`
	FeederID uint      `gorm:"column:feeder_id;not null" json:"feeder_id"`
	Location string    `gorm:"column:location;size:255;not null" json:"location"`
	Landmark string    `gorm:"column:landmark;size:255" json:"landmark"`
	FoodType string    `gorm:"column:food_type;size:100" json:"food_type"`
	Quantity string    `gorm:"column:quantity;size:50" json:"quantity"`
	PhotoURL string    `gorm:"column:photo_url;size:255" json:"photo_url"`
	FeedTime time.Time `gorm:"column:feed_time;autoCreateTime" json:"feed_time"`

	Feeder *User `gorm:"foreignKey:FeederID;references:UserID;constraint:OnDelete:CASCADE" json:"Feeder,omitempty"`
}

func (FeedLog) TableName() string {
	return "feed_log"
}
