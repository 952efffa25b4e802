package inspection

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/models"
)

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestValidateVehicleInfo(t *testing.T) {
	tests := map[string]struct {
		info        models.VehicleInfo
		wantCanSave bool
		wantError   string // substring expected in Errors, "" for none
		wantWarning string // substring expected in Warnings, "" for none
	}{
		"all required fields valid": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Year: "2018", Mileage: "84500"},
			wantCanSave: true,
		},
		"missing brand": {
			info:        models.VehicleInfo{Model: "X", Plate: "ABC123"},
			wantCanSave: false,
			wantError:   "brand",
		},
		"whitespace model": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "   ", Plate: "ABC123"},
			wantCanSave: false,
			wantError:   "model",
		},
		"short plate warns but saves": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "AB"},
			wantCanSave: true,
			wantWarning: "plate",
		},
		"odd plate characters warn": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "AB#123"},
			wantCanSave: true,
			wantWarning: "plate",
		},
		"year out of range": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Year: "1850"},
			wantCanSave: false,
			wantError:   "year",
		},
		"year in the future": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Year: fmt.Sprintf("%d", time.Now().Year()+5)},
			wantCanSave: false,
			wantError:   "year",
		},
		"year not a number": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Year: "twenty-18"},
			wantCanSave: false,
			wantError:   "year",
		},
		"absent year warns": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Mileage: "50000"},
			wantCanSave: true,
			wantWarning: "year",
		},
		"negative mileage": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Mileage: "-100"},
			wantCanSave: false,
			wantError:   "mileage",
		},
		"non-numeric mileage": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Mileage: "lots"},
			wantCanSave: false,
			wantError:   "mileage",
		},
		"implausible mileage warns": {
			info:        models.VehicleInfo{Brand: "Toyota", Model: "Prado", Plate: "ABC123", Mileage: "750000"},
			wantCanSave: true,
			wantWarning: "mileage",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := ValidateVehicleInfo(tc.info)

			assert.Equal(t, tc.wantCanSave, result.CanSave)
			assert.Equal(t, tc.wantCanSave, result.IsValid)
			if tc.wantError != "" {
				assert.True(t, containsSubstring(result.Errors, tc.wantError),
					"expected an error mentioning %q, got %v", tc.wantError, result.Errors)
			}
			if tc.wantWarning != "" {
				assert.True(t, containsSubstring(result.Warnings, tc.wantWarning),
					"expected a warning mentioning %q, got %v", tc.wantWarning, result.Warnings)
			}
		})
	}
}

func TestWarningsNeverBlockSave(t *testing.T) {
	// Every advisory field off at once: still saveable
	result := ValidateVehicleInfo(models.VehicleInfo{
		Brand:   "Toyota",
		Model:   "Prado",
		Plate:   "AB",
		Mileage: "900000",
	})
	assert.True(t, result.CanSave)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateInspectionData(t *testing.T) {
	empty := ValidateInspectionData(Initialize())
	assert.False(t, empty.CanSave)
	assert.True(t, containsSubstring(empty.Errors, "evaluated"))

	cat := catalog.All()[0].Name
	item := catalog.All()[0].Items[0].Name
	state, err := EvaluateItem(Initialize(), cat, item, 0, 0, "note only still counts")
	require.NoError(t, err)

	result := ValidateInspectionData(state)
	assert.True(t, result.CanSave)
	assert.Empty(t, result.Errors)
}
