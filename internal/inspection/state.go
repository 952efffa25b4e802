// Package inspection implements the working state of one vehicle inspection
// session: initialization from the catalog, the mutation operations the
// checklist UI drives, the derived metrics, and the validators gating
// persistence. All operations are immutable-update: they take a state value
// and return a new one, so callers never share mutable structure.
package inspection

import (
	"errors"
	"log"
	"math"
	"strings"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/models"
)

// ErrUnknownItem is returned when a mutation references a (category, item)
// pair that does not exist in the catalog. Unlike out-of-range scores or
// costs, which are user-input noise and get coerced, an unknown pair means a
// programming bug or corrupted persisted data and must not be absorbed
// silently.
var ErrUnknownItem = errors.New("unknown catalog item")

const (
	MinScore = 0
	MaxScore = 10
)

// Initialize builds a fresh inspection state with a default evaluation for
// every (category, item) pair in the catalog.
func Initialize() models.InspectionState {
	items := make(map[string]map[string]models.ItemEvaluation, len(catalog.Categories()))
	for _, cat := range catalog.All() {
		evals := make(map[string]models.ItemEvaluation, len(cat.Items))
		for _, item := range cat.Items {
			evals[item.Name] = models.ItemEvaluation{}
		}
		items[cat.Name] = evals
	}
	return models.InspectionState{Items: items}
}

// Reset discards all recorded evaluations and vehicle info.
func Reset() models.InspectionState {
	return Initialize()
}

// Load rebuilds a usable state from a persisted one. Pairs present in the
// catalog but missing from the persisted record are filled with defaults;
// pairs in the record that the catalog no longer knows are dropped, so a
// record saved under an older checklist loads cleanly. Load never fails.
func Load(persisted models.InspectionState) models.InspectionState {
	state := Initialize()
	state.VehicleInfo = persisted.VehicleInfo

	for category, evals := range persisted.Items {
		for name, eval := range evals {
			if !catalog.Contains(category, name) {
				log.Printf("inspection: dropping stale item %q/%q from persisted record", category, name)
				continue
			}
			eval.Score = clampScore(eval.Score)
			eval.RepairCost = coerceCost(eval.RepairCost)
			state.Items[category][name] = eval
		}
	}
	return state
}

// vehicleInfoFields maps the public field names accepted by
// UpdateVehicleInfo to setters on VehicleInfo.
var vehicleInfoFields = map[string]func(*models.VehicleInfo, string){
	"brand":        func(v *models.VehicleInfo, s string) { v.Brand = s },
	"model":        func(v *models.VehicleInfo, s string) { v.Model = s },
	"plate":        func(v *models.VehicleInfo, s string) { v.Plate = s },
	"year":         func(v *models.VehicleInfo, s string) { v.Year = s },
	"mileage":      func(v *models.VehicleInfo, s string) { v.Mileage = s },
	"price":        func(v *models.VehicleInfo, s string) { v.Price = s },
	"seller_name":  func(v *models.VehicleInfo, s string) { v.SellerName = s },
	"seller_phone": func(v *models.VehicleInfo, s string) { v.SellerPhone = s },
	"location":     func(v *models.VehicleInfo, s string) { v.Location = s },
}

// VehicleInfoFieldKnown reports whether UpdateVehicleInfo accepts a field
// name.
func VehicleInfoFieldKnown(field string) bool {
	_, ok := vehicleInfoFields[field]
	return ok
}

// UpdateVehicleInfo sets one vehicle identification field. Unknown field
// names are logged and ignored rather than rejected: they come from form
// wiring, not structured input, and must not break the session.
func UpdateVehicleInfo(state models.InspectionState, field, value string) models.InspectionState {
	set, ok := vehicleInfoFields[field]
	if !ok {
		log.Printf("inspection: ignoring unknown vehicle info field %q", field)
		return state
	}
	next := cloneState(state)
	set(&next.VehicleInfo, value)
	return next
}

// EvaluateItem records a score, repair cost estimate and notes for one
// checklist item. The score is clamped into [0, 10] and the cost coerced to
// a non-negative number; UI input cannot exceed those bounds but programmatic
// callers might. The Evaluated flag is derived uniformly: true whenever the
// resulting score is positive or the notes are non-empty, false again once
// both are cleared.
func EvaluateItem(state models.InspectionState, category, item string, score int, repairCost float64, notes string) (models.InspectionState, error) {
	if !catalog.Contains(category, item) {
		return state, ErrUnknownItem
	}

	next := cloneState(state)
	eval := next.Items[category][item]
	eval.Score = clampScore(score)
	eval.RepairCost = coerceCost(repairCost)
	eval.Notes = notes
	eval.Evaluated = eval.Score > 0 || strings.TrimSpace(eval.Notes) != ""
	next.Items[category][item] = eval
	return next, nil
}

// AddPhoto appends a photo reference to an item's photo list.
func AddPhoto(state models.InspectionState, category, item string, photo models.PhotoRef) (models.InspectionState, error) {
	if !catalog.Contains(category, item) {
		return state, ErrUnknownItem
	}

	next := cloneState(state)
	eval := next.Items[category][item]
	photos := make([]models.PhotoRef, 0, len(eval.Photos)+1)
	photos = append(photos, eval.Photos...)
	photos = append(photos, photo)
	eval.Photos = photos
	next.Items[category][item] = eval
	return next, nil
}

// RemovePhoto removes the photo at index from an item's photo list. An
// out-of-range index is a no-op.
func RemovePhoto(state models.InspectionState, category, item string, index int) (models.InspectionState, error) {
	if !catalog.Contains(category, item) {
		return state, ErrUnknownItem
	}

	eval := state.Items[category][item]
	if index < 0 || index >= len(eval.Photos) {
		return state, nil
	}

	next := cloneState(state)
	eval = next.Items[category][item]
	photos := make([]models.PhotoRef, 0, len(eval.Photos)-1)
	photos = append(photos, eval.Photos[:index]...)
	photos = append(photos, eval.Photos[index+1:]...)
	if len(photos) == 0 {
		photos = nil
	}
	eval.Photos = photos
	next.Items[category][item] = eval
	return next, nil
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func coerceCost(cost float64) float64 {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0
	}
	return cost
}

func cloneState(state models.InspectionState) models.InspectionState {
	items := make(map[string]map[string]models.ItemEvaluation, len(state.Items))
	for category, evals := range state.Items {
		clone := make(map[string]models.ItemEvaluation, len(evals))
		for name, eval := range evals {
			clone[name] = eval
		}
		items[category] = clone
	}
	return models.InspectionState{
		VehicleInfo: state.VehicleInfo,
		Items:       items,
	}
}
