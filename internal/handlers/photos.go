package handlers

import (
	"errors"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autovista/inspect-api/internal/config"
	"github.com/autovista/inspect-api/internal/database"
	"github.com/autovista/inspect-api/internal/inspection"
	"github.com/autovista/inspect-api/internal/models"
	"github.com/autovista/inspect-api/internal/services"
)

const maxPhotoSizeBytes = 10 * 1024 * 1024

// PhotoHandler handles item photo endpoints. It is only wired up when object
// storage is configured; the rest of the API works without it.
type PhotoHandler struct {
	db      *database.DB
	cfg     *config.Config
	storage *services.PhotoStorage
	scanner *services.PlateScanService
}

// NewPhotoHandler creates a new photo handler. scanner may be nil when plate
// scanning is disabled.
func NewPhotoHandler(db *database.DB, cfg *config.Config, storage *services.PhotoStorage, scanner *services.PlateScanService) *PhotoHandler {
	return &PhotoHandler{
		db:      db,
		cfg:     cfg,
		storage: storage,
		scanner: scanner,
	}
}

// UploadItemPhoto uploads a photo for one checklist item and appends its
// reference to the item's evaluation
func (h *PhotoHandler) UploadItemPhoto(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	category := pathParam(c, "category")
	item := pathParam(c, "item")

	file, err := c.FormFile("photo")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "photo file is required")
	}

	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return Error(c, fiber.StatusBadRequest, "invalid image type. Supported: JPEG, PNG, WebP")
	}

	if file.Size > maxPhotoSizeBytes {
		return Error(c, fiber.StatusBadRequest, "file too large. Maximum size is 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}
	defer src.Close()

	key := services.PhotoKey(rec.ID, category, item, file.Filename)

	uploadResult, err := h.storage.Upload(c.Context(), key, src, file.Size, contentType)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to upload photo")
	}

	url, err := h.storage.PresignedURL(c.Context(), key, 24*time.Hour)
	if err != nil {
		url = "" // reference stays usable through the key
	}

	photo := models.PhotoRef{
		URL:         url,
		Key:         uploadResult.Key,
		ContentType: contentType,
		SizeBytes:   uploadResult.Size,
		UploadedAt:  time.Now(),
	}

	state, err := inspection.AddPhoto(inspection.Load(rec.State), category, item, photo)
	if err != nil {
		// Clean up the orphaned object before reporting
		if deleteErr := h.storage.Delete(c.Context(), key); deleteErr != nil {
			log.Printf("Warning: failed to clean up object %s after add failure: %v", key, deleteErr)
		}
		if errors.Is(err, inspection.ErrUnknownItem) {
			return Error(c, fiber.StatusNotFound, "unknown checklist item")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to attach photo")
	}

	updated, err := h.db.UpdateInspectionState(c.Context(), rec.ID, state)
	if err != nil {
		if deleteErr := h.storage.Delete(c.Context(), key); deleteErr != nil {
			log.Printf("Warning: failed to clean up object %s after save failure: %v", key, deleteErr)
		}
		return Error(c, fiber.StatusInternalServerError, "failed to save inspection")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data: fiber.Map{
			"inspection": updated,
			"photo":      photo,
		},
	})
}

// RemoveItemPhoto removes the photo at the given index from an item and
// deletes the underlying object
func (h *PhotoHandler) RemoveItemPhoto(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	category := pathParam(c, "category")
	item := pathParam(c, "item")

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid photo index")
	}

	state := inspection.Load(rec.State)
	photos := state.Evaluation(category, item).Photos

	next, err := inspection.RemovePhoto(state, category, item, index)
	if err != nil {
		if errors.Is(err, inspection.ErrUnknownItem) {
			return Error(c, fiber.StatusNotFound, "unknown checklist item")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to remove photo")
	}

	updated, err := h.db.UpdateInspectionState(c.Context(), rec.ID, next)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save inspection")
	}

	// Delete the object only after the state is saved; an orphaned object is
	// recoverable, a dangling reference is not
	if index >= 0 && index < len(photos) {
		if deleteErr := h.storage.Delete(c.Context(), photos[index].Key); deleteErr != nil {
			log.Printf("Warning: failed to delete object %s: %v", photos[index].Key, deleteErr)
		}
	}

	return Success(c, updated)
}

// GetItemPhotoURL returns a fresh presigned URL for one photo
func (h *PhotoHandler) GetItemPhotoURL(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	category := pathParam(c, "category")
	item := pathParam(c, "item")

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid photo index")
	}

	photos := inspection.Load(rec.State).Evaluation(category, item).Photos
	if index < 0 || index >= len(photos) {
		return Error(c, fiber.StatusNotFound, "photo not found")
	}

	url, err := h.storage.PresignedURL(c.Context(), photos[index].Key, time.Hour)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to generate photo URL")
	}

	return Success(c, fiber.Map{"url": url})
}

// ScanPlate runs OCR over an uploaded plate or registration photo and, when
// a plate is recognized, stores it into the vehicle info
func (h *PhotoHandler) ScanPlate(c *fiber.Ctx) error {
	if h.scanner == nil {
		return Error(c, fiber.StatusServiceUnavailable, "plate scanning is not enabled")
	}

	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}
	if rec.Status != models.StatusDraft {
		return Error(c, fiber.StatusConflict, "inspection is already completed")
	}

	imageBytes, err := h.readPlateImage(c, rec)
	if imageBytes == nil {
		return err
	}

	result, err := h.scanner.ScanImage(imageBytes)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to scan image")
	}

	if result.Plate == "" {
		return Success(c, fiber.Map{"plate": "", "recognized": false})
	}

	state := inspection.UpdateVehicleInfo(inspection.Load(rec.State), "plate", result.Plate)
	updated, err := h.db.UpdateInspectionState(c.Context(), rec.ID, state)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save inspection")
	}

	return Success(c, fiber.Map{
		"plate":      result.Plate,
		"recognized": true,
		"inspection": updated,
	})
}

// readPlateImage reads the image to scan: either a fresh multipart upload or
// an already stored item photo referenced by category, item and index. On
// failure the response is already written and the returned slice is nil.
func (h *PhotoHandler) readPlateImage(c *fiber.Ctx, rec *models.Inspection) ([]byte, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		var req models.ScanStoredPhotoRequest
		if err := c.BodyParser(&req); err != nil || req.Category == "" || req.Item == "" {
			return nil, Error(c, fiber.StatusBadRequest, "photo file or stored photo reference is required")
		}

		photos := inspection.Load(rec.State).Evaluation(req.Category, req.Item).Photos
		if req.Index < 0 || req.Index >= len(photos) {
			return nil, Error(c, fiber.StatusNotFound, "photo not found")
		}

		obj, err := h.storage.Download(c.Context(), photos[req.Index].Key)
		if err != nil {
			return nil, Error(c, fiber.StatusInternalServerError, "failed to download photo")
		}
		defer obj.Close()

		data, err := io.ReadAll(io.LimitReader(obj, maxPhotoSizeBytes))
		if err != nil {
			return nil, Error(c, fiber.StatusInternalServerError, "failed to read photo")
		}
		return data, nil
	}

	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return nil, Error(c, fiber.StatusBadRequest, "invalid image type. Supported: JPEG, PNG, WebP")
	}

	if file.Size > maxPhotoSizeBytes {
		return nil, Error(c, fiber.StatusBadRequest, "file too large. Maximum size is 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return nil, Error(c, fiber.StatusInternalServerError, "failed to read file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPhotoSizeBytes))
	if err != nil {
		return nil, Error(c, fiber.StatusInternalServerError, "failed to read file")
	}
	return data, nil
}

// DeleteInspection removes an inspection together with its stored photo
// objects. Registered in place of Handler.DeleteInspection when object
// storage is configured.
func (h *PhotoHandler) DeleteInspection(c *fiber.Ctx) error {
	rec, err := loadOwnedInspection(c, h.db)
	if rec == nil {
		return err
	}

	keys := collectPhotoKeys(inspection.Load(rec.State))

	if err := h.db.DeleteInspection(c.Context(), rec.ID); err != nil {
		if errors.Is(err, database.ErrInspectionNotFound) {
			return Error(c, fiber.StatusNotFound, "inspection not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to delete inspection")
	}

	// Orphaned objects are only a storage cost, so a failed cleanup does not
	// fail the request
	if len(keys) > 0 {
		if err := h.storage.DeleteMultiple(c.Context(), keys); err != nil {
			log.Printf("Warning: failed to delete objects for inspection %s: %v", rec.ID, err)
		}
	}

	return Success(c, fiber.Map{"deleted": true})
}

// collectPhotoKeys gathers the object keys of every photo in the state
func collectPhotoKeys(state models.InspectionState) []string {
	var keys []string
	for _, items := range state.Items {
		for _, eval := range items {
			for _, photo := range eval.Photos {
				if photo.Key != "" {
					keys = append(keys, photo.Key)
				}
			}
		}
	}
	return keys
}

func isValidImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
