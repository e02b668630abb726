package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
	"github.com/pawbridge/api-go/utils"
	"gorm.io/gorm"
)

// ZoneController backs the map editor. Zones are shared working data: any
// authenticated user may create, reshape or remove any zone.
type ZoneController struct {
	DB *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{DB: db}
}

func (zc *ZoneController) GetAllZones(c *gin.Context) {
	var zones []models.Zone
	if err := zc.DB.Preload("Creator").Order("created_at DESC").Find(&zones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (zc *ZoneController) GetZoneById(c *gin.Context) {
	var zone models.Zone
	if err := zc.DB.Preload("Creator").First(&zone, "zone_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Zone not found"})
		return
	}
	c.JSON(http.StatusOK, zone)
}

func (zc *ZoneController) CreateZone(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		ZoneName     string  `json:"zone_name"`
		ZoneType     string  `json:"zone_type"`
		Latitude     float64 `json:"latitude"`
		Longitude    float64 `json:"longitude"`
		RadiusMeters float64 `json:"radius_meters"`

		DogPopulation    int     `json:"dog_population"`
		AffectedByRabies int     `json:"affected_by_rabies"`
		BiteCases        int     `json:"bite_cases"`
		VaccinatedDogs   int     `json:"vaccinated_dogs"`
		SterilizedDogs   int     `json:"sterilized_dogs"`
		FoodScore        float64 `json:"food_score"`
		WaterScore       float64 `json:"water_score"`

		RiskLevel                    string  `json:"risk_level"`
		PredictedPopulationNextMonth int     `json:"predicted_population_next_month"`
		PredictedRiskRadius          float64 `json:"predicted_risk_radius"`
		Remarks                      string  `json:"remarks"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.ZoneName == "" || input.ZoneType == "" || input.Latitude == 0 || input.Longitude == 0 || input.RadiusMeters == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Zone name, type, latitude, longitude, and radius are required"})
		return
	}

	if input.RiskLevel == "" {
		input.RiskLevel = "Low"
	}
	if !models.ValidZoneType(input.ZoneType) || !models.ValidZoneRiskLevel(input.RiskLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid zone type or risk level"})
		return
	}

	zone := models.Zone{
		ZoneName:     input.ZoneName,
		ZoneType:     input.ZoneType,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: input.RadiusMeters,

		DogPopulation:    input.DogPopulation,
		AffectedByRabies: input.AffectedByRabies,
		BiteCases:        input.BiteCases,
		VaccinatedDogs:   input.VaccinatedDogs,
		SterilizedDogs:   input.SterilizedDogs,
		FoodScore:        input.FoodScore,
		WaterScore:       input.WaterScore,

		RiskLevel:                    input.RiskLevel,
		PredictedPopulationNextMonth: input.PredictedPopulationNextMonth,
		PredictedRiskRadius:          input.PredictedRiskRadius,
		Remarks:                      input.Remarks,

		CreatedBy: user.UserID,
	}

	if err := zc.DB.Create(&zone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Zone created successfully",
		"id":      zone.ZoneID,
		"zone":    zone,
	})
}

func (zc *ZoneController) UpdateZone(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"zone_name", "zone_type", "risk_level", "remarks"} {
		if v, ok := body[field].(string); ok {
			updates[field] = v
		}
	}
	for _, field := range []string{"latitude", "longitude", "radius_meters", "dog_population", "affected_by_rabies", "bite_cases", "vaccinated_dogs", "sterilized_dogs", "food_score", "water_score", "predicted_population_next_month", "predicted_risk_radius"} {
		if v, ok := body[field].(float64); ok {
			updates[field] = v
		}
	}

	if v, ok := updates["zone_type"].(string); ok && !models.ValidZoneType(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid zone type"})
		return
	}
	if v, ok := updates["risk_level"].(string); ok && !models.ValidZoneRiskLevel(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid risk level"})
		return
	}

	if len(updates) > 0 {
		// updated_at is touched automatically by the ORM.
		result := zc.DB.Model(&models.Zone{}).Where("zone_id = ?", c.Param("id")).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Zone not found"})
			return
		}
	}

	var updated models.Zone
	if err := zc.DB.First(&updated, "zone_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Zone not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (zc *ZoneController) DeleteZone(c *gin.Context) {
	result := zc.DB.Where("zone_id = ?", c.Param("id")).Delete(&models.Zone{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Zone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Zone deleted successfully"})
}
