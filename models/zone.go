package models

import (
	"time"
)

type Zone struct {
	ZoneID       uint    `gorm:"column:zone_id;primaryKey;autoIncrement" json:"zone_id"`
	ZoneName     string  `gorm:"column:zone_name;size:100;not null" json:"zone_name"`
	ZoneType     string  `gorm:"column:zone_type;size:20;not null" json:"zone_type"` // Danger, Feeding, Help, Adoption
	Latitude     float64 `gorm:"column:latitude;type:decimal(10,7);not null" json:"latitude"`
	Longitude    float64 `gorm:"column:longitude;type:decimal(10,7);not null" json:"longitude"`
	RadiusMeters float64 `gorm:"column:radius_meters;not null" json:"radius_meters"`

	DogPopulation    int     `gorm:"column:dog_population;default:0" json:"dog_population"`
	AffectedByRabies int     `gorm:"column:affected_by_rabies;default:0" json:"affected_by_rabies"`
	BiteCases        int     `gorm:"column:bite_cases;default:0" json:"bite_cases"`
	VaccinatedDogs   int     `gorm:"column:vaccinated_dogs;default:0" json:"vaccinated_dogs"`
	SterilizedDogs   int     `gorm:"column:sterilized_dogs;default:0" json:"sterilized_dogs"`
	FoodScore        float64 `gorm:"column:food_score;default:0" json:"food_score"`
	WaterScore       float64 `gorm:"column:water_score;default:0" json:"water_score"`

	RiskLevel                    string  `gorm:"column:risk_level;size:10;default:Low" json:"risk_level"` // Low, Medium, High
	PredictedPopulationNextMonth int     `gorm:"column:predicted_population_next_month;default:0" json:"predicted_population_next_month"`
	PredictedRiskRadius          float64 `gorm:"column:predicted_risk_radius" json:"predicted_risk_radius"`
	Remarks                      string  `gorm:"column:remarks;type:text" json:"remarks"`

	CreatedBy uint      `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Creator *User `gorm:"foreignKey:CreatedBy;references:UserID;constraint:OnDelete:CASCADE" json:"Creator,omitempty"`
}

func (Zone) TableName() string {
	return "zones"
}
