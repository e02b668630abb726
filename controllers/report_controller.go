package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
	"github.com/pawbridge/api-go/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (rc *ReportController) GetAllReports(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Preload("Poster").Preload("Assignee").
		Order("date_reported DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (rc *ReportController) GetReportById(c *gin.Context) {
	var report models.Report
	if err := rc.DB.Preload("Poster").Preload("Assignee").
		First(&report, "report_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Title       string `json:"title"`
		Priority    string `json:"priority"`
		Location    string `json:"location"`
		Landmark    string `json:"landmark"`
		Description string `json:"description"`
		PhotoURL    string `json:"photo_url"`
		Category    string `json:"category"`
		Visibility  string `json:"visibility"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Title == "" || input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and location are required"})
		return
	}

	if input.Priority == "" {
		input.Priority = "medium"
	}
	if input.Category == "" {
		input.Category = "other"
	}
	if input.Visibility == "" {
		input.Visibility = "public"
	}

	if !models.ValidReportPriority(input.Priority) || !models.ValidReportCategory(input.Category) || !models.ValidReportVisibility(input.Visibility) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid priority, category, or visibility"})
		return
	}

	report := models.Report{
		Title:       input.Title,
		Priority:    input.Priority,
		Location:    input.Location,
		Landmark:    input.Landmark,
		Description: input.Description,
		PhotoURL:    input.PhotoURL,
		Category:    input.Category,
		Visibility:  input.Visibility,
		Status:      "pending",
		PostedBy:    &user.UserID,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// CreateCitizenReport accepts anonymous submissions. The server forces the
// workflow fields so a citizen cannot seed a report as resolved or urgent.
func (rc *ReportController) CreateCitizenReport(c *gin.Context) {
	var input struct {
		Title       string `json:"title"`
		Location    string `json:"location"`
		Landmark    string `json:"landmark"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Location is required"})
		return
	}

	title := input.Title
	if title == "" {
		title = fmt.Sprintf("Citizen Report - %s", time.Now().Format("1/2/2006"))
	}

	category := input.Category
	if category == "" {
		category = "other"
	}
	if !models.ValidReportCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	report := models.Report{
		Title:       title,
		Location:    input.Location,
		Landmark:    input.Landmark,
		Description: input.Description,
		Category:    category,
		Priority:    "medium",
		Visibility:  "public",
		Status:      "pending",
		PostedBy:    nil, // Anonymous submission
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Citizen report submitted successfully",
		"id":      report.ReportID,
		"report":  report,
	})
}

// UpdateReport is the ownership-scoped update. status and assigned_to are
// never read from the body here; those fields belong to AdminUpdateReport.
// Not-found and not-owned are indistinguishable in the response.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	user := utils.GetUser(c)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"title", "priority", "location", "landmark", "description", "photo_url", "category", "visibility"} {
		if v, ok := body[field].(string); ok {
			updates[field] = v
		}
	}

	if v, ok := updates["priority"].(string); ok && !models.ValidReportPriority(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid priority"})
		return
	}
	if v, ok := updates["category"].(string); ok && !models.ValidReportCategory(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}
	if v, ok := updates["visibility"].(string); ok && !models.ValidReportVisibility(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid visibility"})
		return
	}

	if len(updates) > 0 {
		result := rc.DB.Model(&models.Report{}).
			Where("report_id = ? AND posted_by = ?", c.Param("id"), user.UserID).
			Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found or not authorized to update"})
			return
		}
	} else {
		// Everything in the body was stripped; still verify the row is the
		// caller's before echoing it back.
		var owned models.Report
		if err := rc.DB.Where("report_id = ? AND posted_by = ?", c.Param("id"), user.UserID).
			First(&owned).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found or not authorized to update"})
			return
		}
	}

	var updated models.Report
	if err := rc.DB.First(&updated, "report_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	user := utils.GetUser(c)

	query := rc.DB.Where("report_id = ?", c.Param("id"))
	if user.Role != "admin" {
		query = query.Where("posted_by = ?", user.UserID)
	}

	result := query.Delete(&models.Report{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found or not authorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// AdminUpdateReport accepts the superset of fields including status and
// assignment, with no ownership restriction. assigned_to may be set to null
// to unassign.
func (rc *ReportController) AdminUpdateReport(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"status", "title", "description", "priority", "location", "category", "visibility"} {
		if v, ok := body[field].(string); ok && v != "" {
			updates[field] = v
		}
	}
	if v, ok := body["assigned_to"]; ok {
		switch assignee := v.(type) {
		case nil:
			updates["assigned_to"] = nil
		case float64:
			updates["assigned_to"] = uint(assignee)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid assigned_to"})
			return
		}
	}

	if v, ok := updates["status"].(string); ok && !models.ValidReportStatus(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if v, ok := updates["priority"].(string); ok && !models.ValidReportPriority(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid priority"})
		return
	}
	if v, ok := updates["category"].(string); ok && !models.ValidReportCategory(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}
	if v, ok := updates["visibility"].(string); ok && !models.ValidReportVisibility(v) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid visibility"})
		return
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided for update"})
		return
	}

	result := rc.DB.Model(&models.Report{}).
		Where("report_id = ?", c.Param("id")).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found or no changes made"})
		return
	}

	var updated models.Report
	if err := rc.DB.First(&updated, "report_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Report status and details updated successfully by Admin",
		"report":  updated,
	})
}
