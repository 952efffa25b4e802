// Package catalog defines the built-in vehicle inspection checklist: an
// ordered set of categories, each holding an ordered set of inspectable
// items. The catalog is fixed at build time and never mutated at runtime;
// every inspection is initialized from it and all report numbering derives
// from its order.
package catalog

import "fmt"

// Item is a single inspectable vehicle component with guidance text for the
// inspector.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category groups related items under one section of the checklist.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// ordinals maps "category\x00item" to the item's 1-based position across the
// whole catalog, precomputed at init.
var ordinals map[string]int

var totalItems int

func init() {
	if err := validate(); err != nil {
		panic(fmt.Sprintf("catalog: invalid checklist definition: %v", err))
	}

	ordinals = make(map[string]int)
	n := 0
	for _, cat := range categories {
		for _, item := range cat.Items {
			n++
			ordinals[ordinalKey(cat.Name, item.Name)] = n
		}
	}
	totalItems = n
}

// validate checks the static checklist definition. A malformed catalog
// corrupts numbering and state initialization everywhere downstream, so any
// violation is fatal at package load rather than surfaced per call.
func validate() error {
	if len(categories) == 0 {
		return fmt.Errorf("no categories defined")
	}

	seenCategories := make(map[string]bool)
	for _, cat := range categories {
		if cat.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if seenCategories[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seenCategories[cat.Name] = true

		if len(cat.Items) == 0 {
			return fmt.Errorf("category %q has no items", cat.Name)
		}

		seenItems := make(map[string]bool)
		for _, item := range cat.Items {
			if item.Name == "" {
				return fmt.Errorf("category %q has an item with empty name", cat.Name)
			}
			if item.Description == "" {
				return fmt.Errorf("item %q in category %q has no description", item.Name, cat.Name)
			}
			if seenItems[item.Name] {
				return fmt.Errorf("duplicate item %q in category %q", item.Name, cat.Name)
			}
			seenItems[item.Name] = true
		}
	}

	return nil
}

func ordinalKey(category, item string) string {
	return category + "\x00" + item
}

// Categories returns the category names in checklist order.
func Categories() []string {
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	return names
}

// All returns the full checklist in order. Callers must not modify the
// returned slices.
func All() []Category {
	return categories
}

// CategoryItems returns the items of a category in checklist order. The
// second return is false for an unknown category.
func CategoryItems(category string) ([]Item, bool) {
	for _, cat := range categories {
		if cat.Name == category {
			return cat.Items, true
		}
	}
	return nil, false
}

// ItemInfo looks up a single item by category and name. The second return is
// false when either the category or the item does not exist.
func ItemInfo(category, name string) (Item, bool) {
	items, ok := CategoryItems(category)
	if !ok {
		return Item{}, false
	}
	for _, item := range items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// Contains reports whether the (category, item) pair exists in the catalog.
func Contains(category, name string) bool {
	_, ok := ItemInfo(category, name)
	return ok
}

// TotalItemCount returns the number of items across all categories.
func TotalItemCount() int {
	return totalItems
}

// ItemOrdinal returns the 1-based position of an item across the whole
// catalog (category order, then item order), used for report numbering. It
// returns 0 for an unknown pair.
func ItemOrdinal(category, name string) int {
	return ordinals[ordinalKey(category, name)]
}
