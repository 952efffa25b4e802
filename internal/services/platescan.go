//go:build cgo

package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/gosseract/v2"
)

// PlateScanService extracts a license plate from an uploaded photo of the
// plate or registration card, so the inspector does not have to type it.
type PlateScanService struct {
	client *gosseract.Client
}

// PlateScanResult contains the OCR processing result
type PlateScanResult struct {
	Plate   string
	RawText string
}

// NewPlateScanService creates a new plate scanning service
func NewPlateScanService() (*PlateScanService, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// Plates are a single short line of text
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &PlateScanService{
		client: client,
	}, nil
}

// ScanImage runs OCR on an image and extracts the most plate-like token from
// the recognized text. It returns an empty Plate when nothing plausible was
// found; that is not an error.
func (s *PlateScanService) ScanImage(imageBytes []byte) (*PlateScanResult, error) {
	// gosseract reads from a file path, so stage the upload in a temp file
	tmpFile, err := os.CreateTemp("", "plate-*.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := tmpFile.Write(imageBytes); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	// Close to flush writes
	tmpFile.Close()

	return s.scanImageFromPath(tmpFile.Name())
}

func (s *PlateScanService) scanImageFromPath(imagePath string) (*PlateScanResult, error) {
	absPath, err := filepath.Abs(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := s.client.SetImage(absPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := s.client.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	return &PlateScanResult{
		Plate:   ExtractPlate(text),
		RawText: text,
	}, nil
}

// Close releases OCR resources
func (s *PlateScanService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
