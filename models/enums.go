package models

// Closed enumerations from the schema. Writes carrying a value outside these
// sets are rejected in the controllers before any SQL runs, so the rules hold
// on every database dialect.

var (
	UserRoles    = []string{"user", "volunteer", "admin"}
	UserStatuses = []string{"active", "inactive", "banned"}

	ReportPriorities   = []string{"low", "medium", "high", "urgent"}
	ReportCategories   = []string{"injury", "abuse", "neglect", "harassment", "abandonment", "other", "feed issue"}
	ReportVisibilities = []string{"public", "private"}
	ReportStatuses     = []string{"pending", "reviewed", "in_progress", "resolved", "dismissed"}

	AdoptionGenders  = []string{"male", "female", "unknown"}
	AdoptionTypes    = []string{"dog", "cat", "other"}
	AdoptionStatuses = []string{"available", "pending", "adopted", "removed"}

	IncidentCategories = []string{"attack", "injury", "rescue_needed", "harassment", "neglect", "disturbance", "other"}
	IncidentUrgencies  = []string{"low", "medium", "high", "critical"}
	IncidentActions    = []string{"rescue", "medical_help", "complaint", "monitor", "other"}
	IncidentStatuses   = []string{"pending", "acknowledged", "in_progress", "resolved", "dismissed"}

	EventStatuses   = []string{"upcoming", "active", "completed", "cancelled"}
	EventCategories = []string{"workshop", "vaccination", "fundraiser", "cleanup", "other"}

	ZoneTypes      = []string{"Danger", "Feeding", "Help", "Adoption"}
	ZoneRiskLevels = []string{"Low", "Medium", "High"}
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func ValidUserRole(v string) bool   { return oneOf(v, UserRoles) }
func ValidUserStatus(v string) bool { return oneOf(v, UserStatuses) }

func ValidReportPriority(v string) bool   { return oneOf(v, ReportPriorities) }
func ValidReportCategory(v string) bool   { return oneOf(v, ReportCategories) }
func ValidReportVisibility(v string) bool { return oneOf(v, ReportVisibilities) }
func ValidReportStatus(v string) bool     { return oneOf(v, ReportStatuses) }

func ValidAdoptionGender(v string) bool { return oneOf(v, AdoptionGenders) }
func ValidAdoptionType(v string) bool   { return oneOf(v, AdoptionTypes) }
func ValidAdoptionStatus(v string) bool { return oneOf(v, AdoptionStatuses) }

func ValidIncidentCategory(v string) bool { return oneOf(v, IncidentCategories) }
func ValidIncidentUrgency(v string) bool  { return oneOf(v, IncidentUrgencies) }
func ValidIncidentAction(v string) bool   { return oneOf(v, IncidentActions) }
func ValidIncidentStatus(v string) bool   { return oneOf(v, IncidentStatuses) }

func ValidEventStatus(v string) bool   { return oneOf(v, EventStatuses) }
func ValidEventCategory(v string) bool { return oneOf(v, EventCategories) }

func ValidZoneType(v string) bool      { return oneOf(v, ZoneTypes) }
func ValidZoneRiskLevel(v string) bool { return oneOf(v, ZoneRiskLevels) }
