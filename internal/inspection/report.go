package inspection

import (
	"time"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/models"
)

// BuildReport assembles the payload the report renderer consumes: every
// checklist item in catalog order with its 1-based ordinal, its evaluation,
// and the category plus global metrics. Metrics are recomputed here rather
// than read back from any stored snapshot.
func BuildReport(rec *models.Inspection) models.Report {
	state := Load(rec.State)
	metrics := ComputeMetrics(state)

	categoryMetrics := make(map[string]models.CategoryMetrics, len(metrics.Categories))
	for _, cm := range metrics.Categories {
		categoryMetrics[cm.Category] = cm
	}

	reportCategories := make([]models.ReportCategory, 0, len(catalog.All()))
	for _, cat := range catalog.All() {
		items := make([]models.ReportItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			items = append(items, models.ReportItem{
				Ordinal:     catalog.ItemOrdinal(cat.Name, item.Name),
				Name:        item.Name,
				Description: item.Description,
				Evaluation:  state.Evaluation(cat.Name, item.Name),
			})
		}
		reportCategories = append(reportCategories, models.ReportCategory{
			Name:    cat.Name,
			Metrics: categoryMetrics[cat.Name],
			Items:   items,
		})
	}

	return models.Report{
		InspectionID: rec.ID,
		Status:       rec.Status,
		VehicleInfo:  state.VehicleInfo,
		GeneratedAt:  time.Now(),
		Categories:   reportCategories,
		Global:       metrics.Global,
	}
}
