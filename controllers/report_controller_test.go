package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
)

func TestCitizenReportForcedDefaults(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/citizen/reports", "", gin.H{
		"location":    "Main St",
		"description": "injured dog",
		// attempts to seed workflow fields must be ignored
		"status":   "resolved",
		"priority": "urgent",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	id := uint(body["id"].(float64))

	var report models.Report
	if err := db.First(&report, "report_id = ?", id).Error; err != nil {
		t.Fatalf("load report: %v", err)
	}
	if report.PostedBy != nil {
		t.Fatalf("posted_by = %v, want nil", *report.PostedBy)
	}
	if report.Status != "pending" {
		t.Fatalf("status = %q, want pending", report.Status)
	}
	if report.Priority != "medium" {
		t.Fatalf("priority = %q, want medium", report.Priority)
	}
	if report.Visibility != "public" {
		t.Fatalf("visibility = %q, want public", report.Visibility)
	}
	if report.Title == "" {
		t.Fatal("expected a generated title")
	}
}

func TestCreateReportRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	_, token := registerUser(t, r, "Poster", "poster@example.com", "user")

	w := doJSON(t, r, http.MethodPost, "/api/reports", token, gin.H{
		"title":    "Hurt stray near park",
		"location": "Elm Park",
		"priority": "high",
		"category": "injury",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	id := uint(decodeBody(t, w)["report_id"].(float64))

	get := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reports/%d", id), "", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}
	body := decodeBody(t, get)
	if body["title"] != "Hurt stray near park" || body["location"] != "Elm Park" {
		t.Fatalf("round trip mismatch: %v", body)
	}
	if body["priority"] != "high" || body["category"] != "injury" {
		t.Fatalf("round trip mismatch: %v", body)
	}
	if body["status"] != "pending" {
		t.Fatalf("status = %v, want pending", body["status"])
	}
	if body["date_reported"] == nil {
		t.Fatal("expected server-assigned date_reported")
	}
}

func TestOwnerUpdateCannotTouchStatus(t *testing.T) {
	r, db := newTestServer(t)

	_, token := registerUser(t, r, "Volunteer", "vol@example.com", "volunteer")
	id := createReport(t, r, token, "Needs triage")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/reports/%d", id), token, gin.H{
		"status": "resolved",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["status"]; got != "pending" {
		t.Fatalf("response status = %v, want pending", got)
	}

	var report models.Report
	db.First(&report, "report_id = ?", id)
	if report.Status != "pending" {
		t.Fatalf("stored status = %q, want pending", report.Status)
	}
}

func TestNonOwnerUpdateRejected(t *testing.T) {
	r, db := newTestServer(t)

	_, ownerToken := registerUser(t, r, "Owner", "owner@example.com", "user")
	_, otherToken := registerUser(t, r, "Other", "other@example.com", "user")
	id := createReport(t, r, ownerToken, "Original title")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/reports/%d", id), otherToken, gin.H{
		"title": "Hijacked",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-owner, got %d", w.Code)
	}

	var report models.Report
	db.First(&report, "report_id = ?", id)
	if report.Title != "Original title" {
		t.Fatalf("title = %q, row must be unchanged", report.Title)
	}
}

func TestAdminUpdateOverridesOwnership(t *testing.T) {
	r, db := newTestServer(t)

	_, ownerToken := registerUser(t, r, "Owner", "owner2@example.com", "user")
	assigneeID, _ := registerUser(t, r, "Assignee", "assignee@example.com", "volunteer")
	_, adminToken := registerUser(t, r, "Admin", "admin2@example.com", "admin")
	id := createReport(t, r, ownerToken, "Escalate me")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/reports/%d", id), adminToken, gin.H{
		"status":      "resolved",
		"assigned_to": assigneeID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var report models.Report
	db.First(&report, "report_id = ?", id)
	if report.Status != "resolved" {
		t.Fatalf("status = %q, want resolved", report.Status)
	}
	if report.AssignedTo == nil || *report.AssignedTo != assigneeID {
		t.Fatalf("assigned_to = %v, want %d", report.AssignedTo, assigneeID)
	}
}

func TestAdminUpdateRejectsUnknownStatus(t *testing.T) {
	r, db := newTestServer(t)

	_, token := registerUser(t, r, "Owner", "owner3@example.com", "user")
	_, adminToken := registerUser(t, r, "Admin", "admin3@example.com", "admin")
	id := createReport(t, r, token, "Enum guard")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/reports/%d", id), adminToken, gin.H{
		"status": "not-a-real-status",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}

	var report models.Report
	db.First(&report, "report_id = ?", id)
	if report.Status != "pending" {
		t.Fatalf("invalid value must never be stored, got %q", report.Status)
	}
}

func TestDeleteReportIdempotence(t *testing.T) {
	r, _ := newTestServer(t)

	_, token := registerUser(t, r, "Owner", "owner4@example.com", "user")
	id := createReport(t, r, token, "Delete me")

	first := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/reports/%d", id), token, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", first.Code)
	}

	second := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/reports/%d", id), token, nil)
	if second.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", second.Code)
	}
}

func TestAdminDeleteSomeoneElsesReport(t *testing.T) {
	r, _ := newTestServer(t)

	_, ownerToken := registerUser(t, r, "Owner", "owner5@example.com", "user")
	_, adminToken := registerUser(t, r, "Admin", "admin5@example.com", "admin")
	id := createReport(t, r, ownerToken, "Admin removes this")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/reports/%d", id), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin delete, got %d", w.Code)
	}
}
