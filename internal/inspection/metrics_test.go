package inspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/models"
)

func categoryMetrics(m models.Metrics, name string) models.CategoryMetrics {
	for _, cm := range m.Categories {
		if cm.Category == name {
			return cm
		}
	}
	return models.CategoryMetrics{}
}

func TestComputeMetricsEmptyState(t *testing.T) {
	m := ComputeMetrics(Initialize())

	assert.Equal(t, catalog.TotalItemCount(), m.Global.TotalItems)
	assert.Equal(t, 0, m.Global.EvaluatedItems)
	assert.Equal(t, 0.0, m.Global.AverageScore)
	assert.Equal(t, 0.0, m.Global.TotalRepairCost)
	assert.Equal(t, 0.0, m.Global.CompletionPercentage)
	assert.Len(t, m.Categories, len(catalog.Categories()))
}

func TestAverageExcludesNotesOnlyItems(t *testing.T) {
	cat := catalog.All()[0].Name
	items := catalog.All()[0].Items

	state, err := EvaluateItem(Initialize(), cat, items[0].Name, 8, 0, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, cat, items[1].Name, 0, 0, "rust spots, no score yet")
	require.NoError(t, err)

	cm := categoryMetrics(ComputeMetrics(state), cat)
	assert.Equal(t, 2, cm.EvaluatedItems)
	// The notes-only item must not drag the average toward zero
	assert.Equal(t, 8.0, cm.AverageScore)
	assert.Equal(t, 8.0, cm.AverageScoreExact)
}

func TestAverageScoreRounding(t *testing.T) {
	cat := catalog.All()[0].Name
	items := catalog.All()[0].Items

	state, err := EvaluateItem(Initialize(), cat, items[0].Name, 7, 0, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, cat, items[1].Name, 7, 0, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, cat, items[2].Name, 8, 0, "")
	require.NoError(t, err)

	cm := categoryMetrics(ComputeMetrics(state), cat)
	assert.InDelta(t, 22.0/3.0, cm.AverageScoreExact, 1e-9)
	assert.Equal(t, 7.3, cm.AverageScore)
}

func TestRepairCostSummedAcrossAllItems(t *testing.T) {
	first := catalog.All()[0]
	second := catalog.All()[1]

	state, err := EvaluateItem(Initialize(), first.Name, first.Items[0].Name, 4, 300, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, second.Name, second.Items[0].Name, 2, 700, "")
	require.NoError(t, err)

	m := ComputeMetrics(state)
	assert.Equal(t, 300.0, categoryMetrics(m, first.Name).TotalRepairCost)
	assert.Equal(t, 700.0, categoryMetrics(m, second.Name).TotalRepairCost)
	assert.Equal(t, 1000.0, m.Global.TotalRepairCost)
}

func TestCompletionPercentage(t *testing.T) {
	first := catalog.All()[0]

	state := Initialize()
	var err error
	for _, item := range first.Items {
		state, err = EvaluateItem(state, first.Name, item.Name, 5, 0, "")
		require.NoError(t, err)
	}

	m := ComputeMetrics(state)
	assert.Equal(t, 100.0, categoryMetrics(m, first.Name).CompletionPercentage)

	wantGlobal := float64(len(first.Items)) / float64(catalog.TotalItemCount()) * 100
	assert.InDelta(t, wantGlobal, m.Global.CompletionPercentage, 1e-9)
}

func TestZeroDenominatorsYieldZero(t *testing.T) {
	// Direct check of the ratio edges: no scored items and no items at all
	m := buildCategoryMetrics("empty", 0, 0, 0, 0, 0)
	assert.Equal(t, 0.0, m.CompletionPercentage)
	assert.Equal(t, 0.0, m.AverageScore)
	assert.False(t, m.CompletionPercentage != m.CompletionPercentage, "must not be NaN")
}

func TestGlobalAggregatesOverItemsNotCategories(t *testing.T) {
	// One item scored 10 in a big category, one scored 2 in a small one: an
	// average of category averages would say 6 regardless of category size;
	// the item-level average must also say 6 here but via the item union
	first := catalog.All()[0]
	second := catalog.All()[1]

	state, err := EvaluateItem(Initialize(), first.Name, first.Items[0].Name, 10, 0, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, first.Name, first.Items[1].Name, 10, 0, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, second.Name, second.Items[0].Name, 2, 0, "")
	require.NoError(t, err)

	m := ComputeMetrics(state)
	// Item-level: (10+10+2)/3; average-of-averages would be (10+2)/2
	assert.InDelta(t, 22.0/3.0, m.Global.AverageScoreExact, 1e-9)
	assert.Equal(t, 7.3, m.Global.AverageScore)
}

func TestEndToEndScenario(t *testing.T) {
	first := catalog.All()[0]
	second := catalog.All()[1]

	// Three items across two categories: scores 10, 6 and a notes-only entry
	// with a 50000 repair estimate on the middle one
	state, err := EvaluateItem(Initialize(), first.Name, first.Items[0].Name, 10, 0, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, first.Name, first.Items[1].Name, 6, 50000, "")
	require.NoError(t, err)
	state, err = EvaluateItem(state, second.Name, second.Items[0].Name, 0, 0, "needs closer look")
	require.NoError(t, err)

	m := ComputeMetrics(state)
	assert.Equal(t, 3, m.Global.EvaluatedItems)
	assert.Equal(t, 8.0, m.Global.AverageScore)
	assert.Equal(t, 50000.0, m.Global.TotalRepairCost)
	wantCompletion := 3.0 / float64(catalog.TotalItemCount()) * 100
	assert.InDelta(t, wantCompletion, m.Global.CompletionPercentage, 1e-9)
}
