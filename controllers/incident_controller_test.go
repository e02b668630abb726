package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
)

func createIncident(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/incidents", token, gin.H{
		"category": "injury",
		"location": "River Rd",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create incident: status %d, body %s", w.Code, w.Body.String())
	}
	return uint(decodeBody(t, w)["id"].(float64))
}

func TestAnonymousIncidentCreate(t *testing.T) {
	r, db := newTestServer(t)

	id := createIncident(t, r, "")

	var incident models.Incident
	if err := db.First(&incident, "incident_id = ?", id).Error; err != nil {
		t.Fatalf("load incident: %v", err)
	}
	if incident.PostedBy != nil {
		t.Fatalf("posted_by = %v, want nil for anonymous report", *incident.PostedBy)
	}
	if incident.Status != "pending" {
		t.Fatalf("status = %q, want pending", incident.Status)
	}
	if incident.Urgency != "medium" {
		t.Fatalf("urgency = %q, want medium default", incident.Urgency)
	}
}

func TestAuthenticatedIncidentRecordsPoster(t *testing.T) {
	r, _ := newTestServer(t)

	posterID, token := registerUser(t, r, "Reporter", "reporter@example.com", "user")
	id := createIncident(t, r, token)

	get := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/incidents/%d", id), "", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}
	body := decodeBody(t, get)
	if uint(body["posted_by"].(float64)) != posterID {
		t.Fatalf("posted_by = %v, want %d", body["posted_by"], posterID)
	}
	if body["postedByName"] != "Reporter" {
		t.Fatalf("postedByName = %v, want Reporter", body["postedByName"])
	}
}

func TestIncidentCreateMissingCategory(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/incidents", "", gin.H{
		"location": "River Rd",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestIncidentCreateRejectsUnknownCategory(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/incidents", "", gin.H{
		"category": "alien-abduction",
		"location": "River Rd",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid category, got %d", w.Code)
	}
}

func TestAdminUpdateIncident(t *testing.T) {
	r, _ := newTestServer(t)

	_, adminToken := registerUser(t, r, "Admin", "inc-admin@example.com", "admin")
	id := createIncident(t, r, "")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/incidents/%d", id), adminToken, gin.H{
		"status":  "acknowledged",
		"remarks": "team dispatched",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	get := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/incidents/%d", id), "", nil)
	body := decodeBody(t, get)
	if body["status"] != "acknowledged" {
		t.Fatalf("status = %v, want acknowledged", body["status"])
	}
	if body["remarks"] != "team dispatched" {
		t.Fatalf("remarks = %v", body["remarks"])
	}
}

func TestIncidentUpdateRequiresAdmin(t *testing.T) {
	r, _ := newTestServer(t)

	_, volunteerToken := registerUser(t, r, "Volunteer", "inc-vol@example.com", "volunteer")
	id := createIncident(t, r, "")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/incidents/%d", id), volunteerToken, gin.H{
		"status": "resolved",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for volunteer, got %d", w.Code)
	}
}

func TestAdminUpdateIncidentNoFields(t *testing.T) {
	r, _ := newTestServer(t)

	_, adminToken := registerUser(t, r, "Admin", "inc-admin2@example.com", "admin")
	id := createIncident(t, r, "")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/incidents/%d", id), adminToken, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when no fields provided, got %d", w.Code)
	}
}

func TestIncidentDeleteIdempotence(t *testing.T) {
	r, _ := newTestServer(t)

	_, adminToken := registerUser(t, r, "Admin", "inc-admin3@example.com", "admin")
	id := createIncident(t, r, "")

	first := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/incidents/%d", id), adminToken, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", first.Code)
	}

	second := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/incidents/%d", id), adminToken, nil)
	if second.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", second.Code)
	}
}
