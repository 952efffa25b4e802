package inspection

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/autovista/inspect-api/internal/models"
)

const (
	minVehicleYear   = 1900
	plausibleMileage = 500000
	minPlateLength   = 3
)

// plateCharsRegex is a deliberately loose shape check: letters, digits,
// spaces and dashes. Regional plate formats vary too much to guess, so a
// mismatch only warns and never blocks a save.
var plateCharsRegex = regexp.MustCompile(`^[A-Za-z0-9 -]+$`)

// ValidateVehicleInfo checks the vehicle identification fields. Brand, model
// and plate are required; everything else degrades to warnings or advisory
// errors. The function is pure and safe to call on every keystroke: malformed
// input becomes an entry in Errors, never a panic.
func ValidateVehicleInfo(info models.VehicleInfo) models.ValidationResult {
	var errs, warnings []string

	if strings.TrimSpace(info.Brand) == "" {
		errs = append(errs, "brand is required")
	}
	if strings.TrimSpace(info.Model) == "" {
		errs = append(errs, "model is required")
	}

	plate := strings.TrimSpace(info.Plate)
	switch {
	case plate == "":
		errs = append(errs, "plate is required")
	case len(plate) < minPlateLength:
		warnings = append(warnings, fmt.Sprintf("plate %q looks too short", plate))
	case !plateCharsRegex.MatchString(plate):
		warnings = append(warnings, fmt.Sprintf("plate %q contains unexpected characters", plate))
	}

	year := strings.TrimSpace(info.Year)
	if year == "" {
		warnings = append(warnings, "year not provided")
	} else if y, err := strconv.Atoi(year); err != nil {
		errs = append(errs, fmt.Sprintf("year %q is not a valid number", year))
	} else if maxYear := time.Now().Year() + 1; y < minVehicleYear || y > maxYear {
		errs = append(errs, fmt.Sprintf("year must be between %d and %d", minVehicleYear, maxYear))
	}

	mileage := strings.TrimSpace(info.Mileage)
	if mileage == "" {
		warnings = append(warnings, "mileage not provided")
	} else if km, err := strconv.ParseFloat(mileage, 64); err != nil {
		errs = append(errs, fmt.Sprintf("mileage %q is not a valid number", mileage))
	} else if km < 0 {
		errs = append(errs, "mileage cannot be negative")
	} else if km > plausibleMileage {
		warnings = append(warnings, fmt.Sprintf("mileage %s looks implausibly high", mileage))
	}

	valid := len(errs) == 0
	return models.ValidationResult{
		IsValid:  valid,
		CanSave:  valid, // warnings never block persistence
		Errors:   errs,
		Warnings: warnings,
	}
}

// ValidateInspectionData checks that the inspection itself is worth saving:
// at least one item must have been evaluated. An inspection with zero
// evaluated items is rejected as empty.
func ValidateInspectionData(state models.InspectionState) models.ValidationResult {
	var errs []string

	evaluated := 0
	for _, evals := range state.Items {
		for _, eval := range evals {
			if eval.Evaluated {
				evaluated++
			}
		}
	}
	if evaluated == 0 {
		errs = append(errs, "at least one checklist item must be evaluated")
	}

	valid := len(errs) == 0
	return models.ValidationResult{
		IsValid: valid,
		CanSave: valid,
		Errors:  errs,
	}
}
