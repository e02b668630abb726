package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/models"
)

func createAdoption(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/adoptions", token, gin.H{
		"name": name,
		"type": "dog",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create adoption: status %d, body %s", w.Code, w.Body.String())
	}
	return uint(decodeBody(t, w)["id"].(float64))
}

func TestAdoptionCreateDefaults(t *testing.T) {
	r, db := newTestServer(t)

	posterID, token := registerUser(t, r, "Poster", "adopt-poster@example.com", "user")
	id := createAdoption(t, r, token, "Biscuit")

	var ad models.Adoption
	if err := db.First(&ad, "adoption_id = ?", id).Error; err != nil {
		t.Fatalf("load adoption: %v", err)
	}
	if ad.Status != "available" {
		t.Fatalf("status = %q, want available", ad.Status)
	}
	if ad.Gender != "unknown" {
		t.Fatalf("gender = %q, want unknown", ad.Gender)
	}
	if ad.PostedBy != posterID {
		t.Fatalf("posted_by = %d, want %d", ad.PostedBy, posterID)
	}
}

func TestAdoptionUpdateNotOwner(t *testing.T) {
	r, db := newTestServer(t)

	_, ownerToken := registerUser(t, r, "Owner", "adopt-owner@example.com", "user")
	_, otherToken := registerUser(t, r, "Other", "adopt-other@example.com", "volunteer")
	id := createAdoption(t, r, ownerToken, "Mochi")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/adoptions/%d", id), otherToken, gin.H{
		"name": "Stolen",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", w.Code)
	}

	var ad models.Adoption
	db.First(&ad, "adoption_id = ?", id)
	if ad.Name != "Mochi" {
		t.Fatalf("name = %q, row must be unchanged", ad.Name)
	}
}

func TestAdoptionUpdateUnknownID(t *testing.T) {
	r, _ := newTestServer(t)

	_, token := registerUser(t, r, "User", "adopt-user@example.com", "user")

	w := doJSON(t, r, http.MethodPut, "/api/adoptions/9999", token, gin.H{"name": "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestAdoptionOwnerCanMarkAdopted(t *testing.T) {
	r, db := newTestServer(t)

	_, ownerToken := registerUser(t, r, "Owner", "adopt-owner2@example.com", "user")
	adopterID, _ := registerUser(t, r, "Adopter", "adopter@example.com", "user")
	id := createAdoption(t, r, ownerToken, "Pepper")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/adoptions/%d", id), ownerToken, gin.H{
		"status":     "adopted",
		"adopted_by": adopterID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var ad models.Adoption
	db.First(&ad, "adoption_id = ?", id)
	if ad.Status != "adopted" {
		t.Fatalf("status = %q, want adopted", ad.Status)
	}
	if ad.AdoptedBy == nil || *ad.AdoptedBy != adopterID {
		t.Fatalf("adopted_by = %v, want %d", ad.AdoptedBy, adopterID)
	}
}

func TestAdoptionUpdateRejectsUnknownStatus(t *testing.T) {
	r, _ := newTestServer(t)

	_, token := registerUser(t, r, "Owner", "adopt-owner3@example.com", "user")
	id := createAdoption(t, r, token, "Clover")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/adoptions/%d", id), token, gin.H{
		"status": "lost",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}
}

func TestAdoptionDeleteByAdmin(t *testing.T) {
	r, _ := newTestServer(t)

	_, ownerToken := registerUser(t, r, "Owner", "adopt-owner4@example.com", "user")
	_, adminToken := registerUser(t, r, "Admin", "adopt-admin@example.com", "admin")
	id := createAdoption(t, r, ownerToken, "Shadow")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/adoptions/%d", id), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	get := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/adoptions/%d", id), "", nil)
	if get.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", get.Code)
	}
}
