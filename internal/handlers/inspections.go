package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/autovista/inspect-api/internal/database"
	"github.com/autovista/inspect-api/internal/inspection"
	"github.com/autovista/inspect-api/internal/middleware"
	"github.com/autovista/inspect-api/internal/models"
)

// CreateInspection starts a new inspection: a fresh state with a default
// evaluation for every catalog item
func (h *Handler) CreateInspection(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rec, err := h.db.CreateInspection(c.Context(), userID, inspection.Initialize())
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create inspection")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    rec,
	})
}

// ListInspections returns a paginated list of the caller's inspections
func (h *Handler) ListInspections(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	params, err := parseListParams(c)
	if params == nil {
		return err
	}
	params.UserID = &userID

	summaries, total, err := h.db.ListInspections(c.Context(), params)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list inspections")
	}

	return SuccessWithMeta(c, summaries, total, params.Limit, params.Offset)
}

// ListAllInspections returns inspections across all users, optionally
// filtered to one user. Registered behind the admin-only route group.
func (h *Handler) ListAllInspections(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if params == nil {
		return err
	}
	if uid := c.QueryInt("user_id", 0); uid > 0 {
		params.UserID = &uid
	}

	summaries, total, err := h.db.ListInspections(c.Context(), params)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list inspections")
	}

	return SuccessWithMeta(c, summaries, total, params.Limit, params.Offset)
}

// parseListParams reads the shared pagination and status filters. On a bad
// filter the response is already written and the params are nil.
func parseListParams(c *fiber.Ctx) (*models.InspectionListParams, error) {
	params := &models.InspectionListParams{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	if status := c.Query("status"); status != "" {
		s := models.InspectionStatus(status)
		if s != models.StatusDraft && s != models.StatusCompleted {
			return nil, Error(c, fiber.StatusBadRequest, "invalid status filter")
		}
		params.Status = &s
	}

	return params, nil
}

// GetInspection returns a single inspection with its full state
func (h *Handler) GetInspection(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	// Normalize against the current catalog so records saved under an older
	// checklist come back complete
	rec.State = inspection.Load(rec.State)

	return Success(c, rec)
}

// DeleteInspection removes an inspection
func (h *Handler) DeleteInspection(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	if err := h.db.DeleteInspection(c.Context(), rec.ID); err != nil {
		if errors.Is(err, database.ErrInspectionNotFound) {
			return Error(c, fiber.StatusNotFound, "inspection not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to delete inspection")
	}

	return Success(c, fiber.Map{"deleted": true})
}

// UpdateVehicleInfo sets one vehicle identification field and returns the
// updated record plus the revalidated vehicle info
func (h *Handler) UpdateVehicleInfo(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	var req models.UpdateVehicleInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !inspection.VehicleInfoFieldKnown(req.Field) {
		return Error(c, fiber.StatusBadRequest, "unknown vehicle info field")
	}

	state := inspection.UpdateVehicleInfo(inspection.Load(rec.State), req.Field, req.Value)

	updated, err := h.db.UpdateInspectionState(c.Context(), rec.ID, state)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save inspection")
	}

	return Success(c, fiber.Map{
		"inspection": updated,
		"validation": inspection.ValidateVehicleInfo(state.VehicleInfo),
	})
}

// EvaluateItem records the score, repair cost and notes for one checklist
// item and returns the updated record plus recomputed metrics
func (h *Handler) EvaluateItem(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	var req models.EvaluateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	category := pathParam(c, "category")
	item := pathParam(c, "item")

	state, err := inspection.EvaluateItem(inspection.Load(rec.State), category, item, req.Score, req.RepairCost, req.Notes)
	if err != nil {
		if errors.Is(err, inspection.ErrUnknownItem) {
			return Error(c, fiber.StatusNotFound, "unknown checklist item")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to evaluate item")
	}

	updated, err := h.db.UpdateInspectionState(c.Context(), rec.ID, state)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save inspection")
	}

	return Success(c, fiber.Map{
		"inspection": updated,
		"evaluation": state.Evaluation(category, item),
		"metrics":    inspection.ComputeMetrics(state),
	})
}

// ResetInspection discards all recorded evaluations and vehicle info of a
// draft, keeping the record itself
func (h *Handler) ResetInspection(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	updated, err := h.db.UpdateInspectionState(c.Context(), rec.ID, inspection.Reset())
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to reset inspection")
	}

	return Success(c, updated)
}

// GetInspectionMetrics recomputes and returns the derived metrics
func (h *Handler) GetInspectionMetrics(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	return Success(c, inspection.ComputeMetrics(inspection.Load(rec.State)))
}

// ValidateInspection runs both save-gating validators without persisting
// anything, so the UI can drive its save affordances
func (h *Handler) ValidateInspection(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	state := inspection.Load(rec.State)
	return Success(c, fiber.Map{
		"vehicle_info": inspection.ValidateVehicleInfo(state.VehicleInfo),
		"inspection":   inspection.ValidateInspectionData(state),
	})
}

// CompleteInspection finalizes a draft. Both validators must pass; the
// metrics snapshot taken here is stored alongside the record for display.
func (h *Handler) CompleteInspection(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	state := inspection.Load(rec.State)

	vehicleResult := inspection.ValidateVehicleInfo(state.VehicleInfo)
	dataResult := inspection.ValidateInspectionData(state)
	if !vehicleResult.CanSave || !dataResult.CanSave {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(APIResponse{
			Success: false,
			Error:   "inspection is not ready to complete",
			Data: fiber.Map{
				"vehicle_info": vehicleResult,
				"inspection":   dataResult,
			},
		})
	}

	metrics := inspection.ComputeMetrics(state)
	updated, err := h.db.CompleteInspection(c.Context(), rec.ID, &metrics)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to complete inspection")
	}

	log.Printf("Inspection %s completed by %s", rec.ID, middleware.GetUserEmail(c))

	return Success(c, updated)
}

// GetInspectionReport returns the report payload consumed by the PDF/print
// renderer
func (h *Handler) GetInspectionReport(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	return Success(c, inspection.BuildReport(rec))
}

// loadOwnedInspection parses the :id parameter, loads the record and
// enforces that the caller owns it (admins may access any record). On
// failure the response is already written and the record is nil, so
// callers guard on the record and return the error as-is. Shared by the
// inspection and photo handlers so the ownership rule cannot drift.
func loadOwnedInspection(c *fiber.Ctx, db *database.DB) (*models.Inspection, error) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return nil, Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, Error(c, fiber.StatusBadRequest, "invalid inspection id")
	}

	rec, err := db.GetInspectionByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrInspectionNotFound) {
			return nil, Error(c, fiber.StatusNotFound, "inspection not found")
		}
		return nil, Error(c, fiber.StatusInternalServerError, "failed to get inspection")
	}

	if rec.UserID != userID && middleware.GetUserRole(c) != models.RoleAdmin {
		return nil, Error(c, fiber.StatusForbidden, "not your inspection")
	}

	return rec, nil
}
