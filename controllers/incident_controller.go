package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
	"github.com/pawbridge/api-go/utils"
	"gorm.io/gorm"
)

// IncidentController reads and writes incidents through raw parameterized
// SQL. Only the delete path goes through the ORM. Callers see the same
// validation rules as the ORM-backed resources.
type IncidentController struct {
	DB *gorm.DB
}

func NewIncidentController(db *gorm.DB) *IncidentController {
	return &IncidentController{DB: db}
}

// incidentRow is the raw-query projection: every incidents column plus the
// joined poster and assignee names.
type incidentRow struct {
	IncidentID      uint      `gorm:"column:incident_id" json:"incident_id"`
	Category        string    `gorm:"column:category" json:"category"`
	Location        string    `gorm:"column:location" json:"location"`
	Landmark        string    `gorm:"column:landmark" json:"landmark"`
	DateReported    time.Time `gorm:"column:date_reported" json:"date_reported"`
	Email           string    `gorm:"column:email" json:"email"`
	Phone           string    `gorm:"column:phone" json:"phone"`
	Description     string    `gorm:"column:description" json:"description"`
	AnimalIdentity  string    `gorm:"column:animal_identity" json:"animal_identity"`
	PhotoURL        string    `gorm:"column:photo_url" json:"photo_url"`
	Urgency         string    `gorm:"column:urgency" json:"urgency"`
	PreferredAction string    `gorm:"column:preferred_action" json:"preferred_action"`
	AssignedTo      *uint     `gorm:"column:assigned_to" json:"assigned_to"`
	PostedBy        *uint     `gorm:"column:posted_by" json:"posted_by"`
	Status          string    `gorm:"column:status" json:"status"`
	Remarks         string    `gorm:"column:remarks" json:"remarks"`
	PostedByName    *string   `gorm:"column:postedByName" json:"postedByName"`
	AssignedToName  *string   `gorm:"column:assignedToName" json:"assignedToName"`
}

const incidentSelect = `
	SELECT
		i.*,
		u.name AS "postedByName",
		a.name AS "assignedToName"
	FROM incidents i
	LEFT JOIN users u ON i.posted_by = u.user_id
	LEFT JOIN users a ON i.assigned_to = a.user_id`

func (ic *IncidentController) GetAllIncidents(c *gin.Context) {
	var rows []incidentRow
	if err := ic.DB.Raw(incidentSelect + " ORDER BY i.date_reported DESC").Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if rows == nil {
		rows = []incidentRow{}
	}
	c.JSON(http.StatusOK, rows)
}

func (ic *IncidentController) GetIncidentById(c *gin.Context) {
	var rows []incidentRow
	if err := ic.DB.Raw(incidentSelect+" WHERE i.incident_id = ?", c.Param("id")).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
		return
	}
	c.JSON(http.StatusOK, rows[0])
}

// CreateIncident is public. When a valid token accompanies the request the
// caller is recorded as the poster, otherwise posted_by stays null.
func (ic *IncidentController) CreateIncident(c *gin.Context) {
	var input struct {
		Category        string `json:"category"`
		Location        string `json:"location"`
		Landmark        string `json:"landmark"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Description     string `json:"description"`
		AnimalIdentity  string `json:"animal_identity"`
		PhotoURL        string `json:"photo_url"`
		Urgency         string `json:"urgency"`
		PreferredAction string `json:"preferred_action"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Category == "" || input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category and location are required"})
		return
	}

	if input.Urgency == "" {
		input.Urgency = "medium"
	}
	if !models.ValidIncidentCategory(input.Category) || !models.ValidIncidentUrgency(input.Urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category or urgency"})
		return
	}
	if input.PreferredAction != "" && !models.ValidIncidentAction(input.PreferredAction) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid preferred action"})
		return
	}

	var postedBy *uint
	if user := utils.GetUser(c); user != nil {
		postedBy = &user.UserID
	}

	var id uint
	err := ic.DB.Raw(`
		INSERT INTO incidents (category, location, landmark, email, phone, description, animal_identity, photo_url, urgency, preferred_action, posted_by, status, date_reported)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', ?)
		RETURNING incident_id`,
		input.Category, input.Location, input.Landmark, input.Email, input.Phone,
		input.Description, input.AnimalIdentity, input.PhotoURL, input.Urgency,
		input.PreferredAction, postedBy, time.Now(),
	).Scan(&id).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Incident reported successfully",
		"id":      id,
	})
}

// AdminUpdateIncident is the only path that can mutate an incident.
func (ic *IncidentController) AdminUpdateIncident(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var setClauses []string
	var values []interface{}

	if v, ok := body["status"].(string); ok && v != "" {
		if !models.ValidIncidentStatus(v) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
			return
		}
		setClauses = append(setClauses, "status = ?")
		values = append(values, v)
	}
	if v, ok := body["assigned_to"]; ok {
		switch assignee := v.(type) {
		case nil:
			setClauses = append(setClauses, "assigned_to = ?")
			values = append(values, nil)
		case float64:
			setClauses = append(setClauses, "assigned_to = ?")
			values = append(values, uint(assignee))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid assigned_to"})
			return
		}
	}
	if v, ok := body["remarks"].(string); ok {
		setClauses = append(setClauses, "remarks = ?")
		values = append(values, v)
	}
	if v, ok := body["category"].(string); ok && v != "" {
		if !models.ValidIncidentCategory(v) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
			return
		}
		setClauses = append(setClauses, "category = ?")
		values = append(values, v)
	}
	if v, ok := body["location"].(string); ok && v != "" {
		setClauses = append(setClauses, "location = ?")
		values = append(values, v)
	}
	if v, ok := body["urgency"].(string); ok && v != "" {
		if !models.ValidIncidentUrgency(v) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid urgency"})
			return
		}
		setClauses = append(setClauses, "urgency = ?")
		values = append(values, v)
	}

	if len(setClauses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided for admin update"})
		return
	}

	values = append(values, c.Param("id"))
	result := ic.DB.Exec("UPDATE incidents SET "+strings.Join(setClauses, ", ")+" WHERE incident_id = ?", values...)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found or no changes made"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Incident ID " + c.Param("id") + " updated successfully by Admin"})
}

func (ic *IncidentController) DeleteIncident(c *gin.Context) {
	result := ic.DB.Where("incident_id = ?", c.Param("id")).Delete(&models.Incident{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Incident deleted successfully"})
}
