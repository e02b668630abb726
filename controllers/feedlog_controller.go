package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
	"github.com/pawbridge/api-go/utils"
	"gorm.io/gorm"
)

type FeedLogController struct {
	DB *gorm.DB
}

func NewFeedLogController(db *gorm.DB) *FeedLogController {
	return &FeedLogController{DB: db}
}

func (fc *FeedLogController) GetAllFeedLogs(c *gin.Context) {
	var logs []models.FeedLog
	if err := fc.DB.Preload("Feeder").Order("feed_time DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (fc *FeedLogController) CreateFeedLog(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Location string     `json:"location"`
		Landmark string     `json:"landmark"`
		FoodType string     `json:"food_type"`
		Quantity string     `json:"quantity"`
		PhotoURL string     `json:"photo_url"`
		FeedTime *time.Time `json:"feed_time"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Location is required"})
		return
	}

	feedTime := time.Now()
	if input.FeedTime != nil {
		feedTime = *input.FeedTime
	}

	log := models.FeedLog{
		FeederID: user.UserID,
		Location: input.Location,
		Landmark: input.Landmark,
		FoodType: input.FoodType,
		Quantity: input.Quantity,
		PhotoURL: input.PhotoURL,
		FeedTime: feedTime,
	}

	if err := fc.DB.Create(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Feed log recorded successfully",
		"id":      log.FeedID,
		"feedLog": log,
	})
}

// DeleteFeedLog has no ownership check: any authenticated user may remove
// any log. See the authorization table in DESIGN.md before tightening this.
func (fc *FeedLogController) DeleteFeedLog(c *gin.Context) {
	result := fc.DB.Where("feed_id = ?", c.Param("id")).Delete(&models.FeedLog{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Feed log not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feed log deleted successfully"})
}
