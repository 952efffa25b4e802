package models

import (
	"time"

	"github.com/google/uuid"
)

// InspectionStatus tracks the lifecycle of a persisted inspection.
type InspectionStatus string

const (
	StatusDraft     InspectionStatus = "draft"
	StatusCompleted InspectionStatus = "completed"
)

// VehicleInfo holds the free-form identification fields entered by the
// inspector. Only Brand, Model and Plate are required to save; the rest are
// advisory. Year, Mileage and Price stay as raw strings because they arrive
// from form input — parsing and plausibility checks live in the validation
// gate, not here.
type VehicleInfo struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Plate       string `json:"plate"`
	Year        string `json:"year"`
	Mileage     string `json:"mileage"`
	Price       string `json:"price"`
	SellerName  string `json:"seller_name"`
	SellerPhone string `json:"seller_phone"`
	Location    string `json:"location"`
}

// PhotoRef points to an uploaded item photo in object storage.
type PhotoRef struct {
	URL         string    `json:"url"`
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ItemEvaluation is the inspector's record for one checklist item. The zero
// value is the "not yet evaluated" state every item starts in.
type ItemEvaluation struct {
	Score      int        `json:"score"`       // 0 = not scored, else 1-10
	RepairCost float64    `json:"repair_cost"` // estimated cost, never negative
	Notes      string     `json:"notes"`
	Photos     []PhotoRef `json:"photos,omitempty"`
	Evaluated  bool       `json:"evaluated"`
}

// InspectionState is the full working state of one inspection session:
// vehicle identification plus an evaluation per catalog item, keyed by
// category name then item name. Only (category, item) pairs present in the
// catalog may appear in Items.
type InspectionState struct {
	VehicleInfo VehicleInfo                          `json:"vehicle_info"`
	Items       map[string]map[string]ItemEvaluation `json:"items"`
}

// Evaluation returns the evaluation for a (category, item) pair, falling
// back to the zero value when the pair is absent.
func (s InspectionState) Evaluation(category, item string) ItemEvaluation {
	return s.Items[category][item]
}

// CategoryMetrics are the derived statistics for one category (or, for the
// global aggregate, the whole checklist).
type CategoryMetrics struct {
	Category             string  `json:"category,omitempty"`
	TotalItems           int     `json:"total_items"`
	EvaluatedItems       int     `json:"evaluated_items"`
	AverageScore         float64 `json:"average_score"`       // rounded to one decimal for display
	AverageScoreExact    float64 `json:"average_score_exact"` // unrounded, for downstream computation
	TotalRepairCost      float64 `json:"total_repair_cost"`
	CompletionPercentage float64 `json:"completion_percentage"` // 0-100
}

// Metrics is the full derived view over an inspection state. It is
// recomputed on every read and never treated as a source of truth, though a
// snapshot is stored alongside a completed inspection for display.
type Metrics struct {
	Categories []CategoryMetrics `json:"categories"`
	Global     CategoryMetrics   `json:"global"`
}

// ValidationResult is the outcome of the save-gating validators. Errors
// block persistence; warnings are informational only.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	CanSave  bool     `json:"can_save"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Inspection is the persisted record wrapping an inspection state.
type Inspection struct {
	ID          uuid.UUID        `json:"id"`
	UserID      int              `json:"user_id"`
	Status      InspectionStatus `json:"status"`
	State       InspectionState  `json:"state"`
	Metrics     *Metrics         `json:"metrics,omitempty"` // snapshot taken at completion
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// InspectionSummary is the list-view projection of an inspection.
type InspectionSummary struct {
	ID          uuid.UUID        `json:"id"`
	UserID      int              `json:"user_id"`
	Status      InspectionStatus `json:"status"`
	VehicleInfo VehicleInfo      `json:"vehicle_info"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// InspectionListParams contains parameters for listing inspections.
type InspectionListParams struct {
	Limit  int
	Offset int
	UserID *int
	Status *InspectionStatus
}

// UpdateVehicleInfoRequest is the request body for setting one vehicle
// identification field.
type UpdateVehicleInfoRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// EvaluateItemRequest is the request body for recording an item evaluation.
type EvaluateItemRequest struct {
	Score      int     `json:"score"`
	RepairCost float64 `json:"repair_cost"`
	Notes      string  `json:"notes"`
}

// ScanStoredPhotoRequest references an already uploaded item photo to run
// plate scanning against instead of a fresh upload.
type ScanStoredPhotoRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Index    int    `json:"index"`
}

// Report is the payload handed to the report/PDF collaborator: vehicle info
// plus every checklist item in catalog order with its ordinal, evaluation
// and category metrics.
type Report struct {
	InspectionID uuid.UUID        `json:"inspection_id"`
	Status       InspectionStatus `json:"status"`
	VehicleInfo  VehicleInfo      `json:"vehicle_info"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Categories   []ReportCategory `json:"categories"`
	Global       CategoryMetrics  `json:"global"`
}

// ReportCategory is one checklist section of a report.
type ReportCategory struct {
	Name    string          `json:"name"`
	Metrics CategoryMetrics `json:"metrics"`
	Items   []ReportItem    `json:"items"`
}

// ReportItem is one numbered checklist row of a report.
type ReportItem struct {
	Ordinal     int            `json:"ordinal"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Evaluation  ItemEvaluation `json:"evaluation"`
}
