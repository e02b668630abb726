package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
	"github.com/pawbridge/api-go/utils"
	"gorm.io/gorm"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

func (ec *EventController) GetAllEvents(c *gin.Context) {
	var events []models.Event
	if err := ec.DB.Preload("Poster").Order("event_date ASC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (ec *EventController) GetEventById(c *gin.Context) {
	var event models.Event
	if err := ec.DB.Preload("Poster").First(&event, "event_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Location    string `json:"location"`
		EventDate   string `json:"event_date"`
		Category    string `json:"category"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Title == "" || input.Location == "" || input.EventDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, location, and event date are required"})
		return
	}

	eventDate, err := parseEventDate(input.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event date"})
		return
	}

	if input.Category == "" {
		input.Category = "other"
	}
	if !models.ValidEventCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		EventDate:   eventDate,
		Category:    input.Category,
		Status:      "upcoming",
		PostedBy:    user.UserID,
	}

	if err := ec.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"id":      event.EventID,
		"event":   event,
	})
}

// UpdateEvent lets the poster or an admin change any field. Not-found and
// not-owned share one 404.
func (ec *EventController) UpdateEvent(c *gin.Context) {
	user := utils.GetUser(c)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"title", "description", "location", "status", "category"} {
		if v, ok := body[field].(string); ok {
			updates[field] = v
		}
	}
	if v, ok := body["event_date"].(string); ok && v != "" {
		parsed, err := parseEventDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event date"})
			return
		}
		updates["event_date"] = parsed
	}

	if v, ok := updates["status"].(string); ok && !models.ValidEventStatus(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if v, ok := updates["category"].(string); ok && !models.ValidEventCategory(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	scope := ec.DB.Model(&models.Event{}).Where("event_id = ?", c.Param("id"))
	if user.Role != "admin" {
		scope = scope.Where("posted_by = ?", user.UserID)
	}

	if len(updates) > 0 {
		result := scope.Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found or not authorized to update"})
			return
		}
	} else {
		ownedScope := ec.DB.Where("event_id = ?", c.Param("id"))
		if user.Role != "admin" {
			ownedScope = ownedScope.Where("posted_by = ?", user.UserID)
		}
		var owned models.Event
		if err := ownedScope.First(&owned).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found or not authorized to update"})
			return
		}
	}

	var updated models.Event
	if err := ec.DB.First(&updated, "event_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	user := utils.GetUser(c)

	query := ec.DB.Where("event_id = ?", c.Param("id"))
	if user.Role != "admin" {
		query = query.Where("posted_by = ?", user.UserID)
	}

	result := query.Delete(&models.Event{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found or not authorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func parseEventDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
