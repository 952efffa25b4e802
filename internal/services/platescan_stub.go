//go:build !cgo

package services

import (
	"errors"
)

// PlateScanService handles plate OCR (stub for Windows)
type PlateScanService struct{}

// PlateScanResult contains the OCR processing result
type PlateScanResult struct {
	Plate   string
	RawText string
}

// NewPlateScanService creates a new plate scanning service (not available on
// Windows)
func NewPlateScanService() (*PlateScanService, error) {
	return nil, errors.New("plate scanning is not available on Windows - run in Docker container")
}

// ScanImage runs OCR on an image and extracts a plate
func (s *PlateScanService) ScanImage(imageBytes []byte) (*PlateScanResult, error) {
	return nil, errors.New("plate scanning is not available on Windows")
}

// Close releases OCR resources
func (s *PlateScanService) Close() error {
	return nil
}
