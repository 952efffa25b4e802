package inspection

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/models"
)

func TestBuildReport(t *testing.T) {
	first := catalog.All()[0]

	state := Initialize()
	state = UpdateVehicleInfo(state, "brand", "Toyota")
	state = UpdateVehicleInfo(state, "model", "Prado")
	state = UpdateVehicleInfo(state, "plate", "ABC123")
	var err error
	state, err = EvaluateItem(state, first.Name, first.Items[0].Name, 9, 150, "minor scratches")
	require.NoError(t, err)

	rec := &models.Inspection{
		ID:     uuid.New(),
		Status: models.StatusDraft,
		State:  state,
	}

	report := BuildReport(rec)

	assert.Equal(t, rec.ID, report.InspectionID)
	assert.Equal(t, "Toyota", report.VehicleInfo.Brand)
	require.Len(t, report.Categories, len(catalog.Categories()))

	// Items appear in catalog order with contiguous 1-based ordinals
	expected := 0
	for ci, cat := range catalog.All() {
		rc := report.Categories[ci]
		assert.Equal(t, cat.Name, rc.Name)
		require.Len(t, rc.Items, len(cat.Items))
		for ii, item := range cat.Items {
			expected++
			assert.Equal(t, expected, rc.Items[ii].Ordinal)
			assert.Equal(t, item.Name, rc.Items[ii].Name)
			assert.Equal(t, item.Description, rc.Items[ii].Description)
		}
	}

	// The recorded evaluation shows up on its row, and the metrics match a
	// fresh computation
	assert.Equal(t, 9, report.Categories[0].Items[0].Evaluation.Score)
	assert.Equal(t, ComputeMetrics(state).Global, report.Global)
	assert.Equal(t, 150.0, report.Categories[0].Metrics.TotalRepairCost)
}

func TestBuildReportToleratesStalePersistedState(t *testing.T) {
	rec := &models.Inspection{
		ID:     uuid.New(),
		Status: models.StatusCompleted,
		State: models.InspectionState{
			Items: map[string]map[string]models.ItemEvaluation{
				"Retired Category": {"Gone item": {Score: 3, Evaluated: true}},
			},
		},
	}

	report := BuildReport(rec)

	require.Len(t, report.Categories, len(catalog.Categories()))
	total := 0
	for _, rc := range report.Categories {
		total += len(rc.Items)
	}
	assert.Equal(t, catalog.TotalItemCount(), total)
	assert.Equal(t, 0, report.Global.EvaluatedItems)
}
