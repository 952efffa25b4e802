package inspection

import (
	"math"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/models"
)

// ComputeMetrics derives per-category and global statistics from an
// inspection state. It is pure, total and cheap enough to run on every
// keystroke: item counts come from the catalog (state cannot invent items),
// missing evaluations count as defaults, and every ratio degrades to 0 when
// its denominator is 0.
//
// Scoring policy: the average is taken over items with score > 0 only, so an
// item evaluated through notes alone does not drag the average toward zero.
// Repair costs are summed over all items regardless of the evaluated flag.
func ComputeMetrics(state models.InspectionState) models.Metrics {
	var (
		perCategory = make([]models.CategoryMetrics, 0, len(catalog.All()))

		globalEvaluated  int
		globalScoreSum   float64
		globalScoreCount int
		globalCost       float64
	)

	for _, cat := range catalog.All() {
		var (
			evaluated  int
			scoreSum   float64
			scoreCount int
			cost       float64
		)

		for _, item := range cat.Items {
			eval := state.Evaluation(cat.Name, item.Name)
			if eval.Evaluated {
				evaluated++
			}
			if eval.Score > 0 {
				scoreSum += float64(eval.Score)
				scoreCount++
			}
			cost += eval.RepairCost
		}

		perCategory = append(perCategory, buildCategoryMetrics(
			cat.Name, len(cat.Items), evaluated, scoreSum, scoreCount, cost,
		))

		globalEvaluated += evaluated
		globalScoreSum += scoreSum
		globalScoreCount += scoreCount
		globalCost += cost
	}

	// The global aggregate runs over the union of all items, not over the
	// category averages, so small categories do not weigh as much as large
	// ones.
	global := buildCategoryMetrics(
		"", catalog.TotalItemCount(), globalEvaluated, globalScoreSum, globalScoreCount, globalCost,
	)

	return models.Metrics{
		Categories: perCategory,
		Global:     global,
	}
}

func buildCategoryMetrics(name string, total, evaluated int, scoreSum float64, scoreCount int, cost float64) models.CategoryMetrics {
	m := models.CategoryMetrics{
		Category:        name,
		TotalItems:      total,
		EvaluatedItems:  evaluated,
		TotalRepairCost: cost,
	}

	if scoreCount > 0 {
		m.AverageScoreExact = scoreSum / float64(scoreCount)
		m.AverageScore = round1(m.AverageScoreExact)
	}

	if total > 0 {
		pct := float64(evaluated) / float64(total) * 100
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		m.CompletionPercentage = pct
	}

	return m
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
