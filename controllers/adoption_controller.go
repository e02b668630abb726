package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
	"github.com/pawbridge/api-go/utils"
	"gorm.io/gorm"
)

type AdoptionController struct {
	DB *gorm.DB
}

func NewAdoptionController(db *gorm.DB) *AdoptionController {
	return &AdoptionController{DB: db}
}

func (ac *AdoptionController) GetAllAdoptions(c *gin.Context) {
	var ads []models.Adoption
	if err := ac.DB.Preload("Poster").Order("date_posted DESC").Find(&ads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (ac *AdoptionController) GetAdoptionById(c *gin.Context) {
	var ad models.Adoption
	if err := ac.DB.Preload("Poster").Preload("Adopter").
		First(&ad, "adoption_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Adoption not found"})
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (ac *AdoptionController) CreateAdoption(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Name          string `json:"name"`
		Age           string `json:"age"`
		Gender        string `json:"gender"`
		Type          string `json:"type"`
		MedicalStatus string `json:"medical_status"`
		RescueStory   string `json:"rescue_story"`
		PhotoURL      string `json:"photo_url"`
		FollowUp      string `json:"follow_up"`
		Location      string `json:"location"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Name == "" || input.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and type are required"})
		return
	}

	if input.Gender == "" {
		input.Gender = "unknown"
	}
	if !models.ValidAdoptionGender(input.Gender) || !models.ValidAdoptionType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gender or type"})
		return
	}

	ad := models.Adoption{
		Name:          input.Name,
		Age:           input.Age,
		Gender:        input.Gender,
		Type:          input.Type,
		MedicalStatus: input.MedicalStatus,
		RescueStory:   input.RescueStory,
		PhotoURL:      input.PhotoURL,
		FollowUp:      input.FollowUp,
		Location:      input.Location,
		Status:        "available",
		PostedBy:      user.UserID,
	}

	if err := ac.DB.Create(&ad).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Adoption created successfully",
		"id":       ad.AdoptionID,
		"adoption": ad,
	})
}

func (ac *AdoptionController) UpdateAdoption(c *gin.Context) {
	user := utils.GetUser(c)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Non-admins may only touch their own postings. Unlike reports, the
	// missing and not-owned cases answer differently here.
	if user.Role != "admin" {
		var ad models.Adoption
		if err := ac.DB.First(&ad, "adoption_id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Adoption not found"})
			return
		}
		if ad.PostedBy != user.UserID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update this adoption"})
			return
		}
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"name", "age", "gender", "type", "medical_status", "rescue_story", "photo_url", "follow_up", "location", "status"} {
		if v, ok := body[field].(string); ok {
			updates[field] = v
		}
	}
	if v, ok := body["adopted_by"]; ok {
		switch adopter := v.(type) {
		case nil:
			updates["adopted_by"] = nil
		case float64:
			updates["adopted_by"] = uint(adopter)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid adopted_by"})
			return
		}
	}

	if v, ok := updates["gender"].(string); ok && !models.ValidAdoptionGender(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gender"})
		return
	}
	if v, ok := updates["type"].(string); ok && !models.ValidAdoptionType(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid type"})
		return
	}
	if v, ok := updates["status"].(string); ok && !models.ValidAdoptionStatus(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	if len(updates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Adoption not found or no changes made"})
		return
	}

	result := ac.DB.Model(&models.Adoption{}).
		Where("adoption_id = ?", c.Param("id")).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Adoption not found or no changes made"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adoption updated successfully"})
}

func (ac *AdoptionController) DeleteAdoption(c *gin.Context) {
	user := utils.GetUser(c)

	if user.Role != "admin" {
		var ad models.Adoption
		if err := ac.DB.First(&ad, "adoption_id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Adoption not found"})
			return
		}
		if ad.PostedBy != user.UserID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this adoption"})
			return
		}
	}

	result := ac.DB.Where("adoption_id = ?", c.Param("id")).Delete(&models.Adoption{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Adoption not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adoption deleted successfully"})
}
