package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autovista/inspect-api/internal/catalog"
)

// GetCatalog returns the full checklist: every category with its items and
// their report ordinals
func (h *Handler) GetCatalog(c *fiber.Ctx) error {
	type catalogItem struct {
		Ordinal     int    `json:"ordinal"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	type catalogCategory struct {
		Name  string        `json:"name"`
		Items []catalogItem `json:"items"`
	}

	out := make([]catalogCategory, 0, len(catalog.All()))
	for _, cat := range catalog.All() {
		items := make([]catalogItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			items = append(items, catalogItem{
				Ordinal:     catalog.ItemOrdinal(cat.Name, item.Name),
				Name:        item.Name,
				Description: item.Description,
			})
		}
		out = append(out, catalogCategory{Name: cat.Name, Items: items})
	}

	return Success(c, fiber.Map{
		"categories":  out,
		"total_items": catalog.TotalItemCount(),
	})
}

// GetCatalogCategories returns the category names in checklist order
func (h *Handler) GetCatalogCategories(c *fiber.Ctx) error {
	return Success(c, catalog.Categories())
}

// GetCatalogCategoryItems returns the items of one category
func (h *Handler) GetCatalogCategoryItems(c *fiber.Ctx) error {
	category := pathParam(c, "category")

	items, ok := catalog.CategoryItems(category)
	if !ok {
		return Error(c, fiber.StatusNotFound, "category not found")
	}

	return Success(c, items)
}

// GetCatalogItem returns one item with its guidance text and ordinal
func (h *Handler) GetCatalogItem(c *fiber.Ctx) error {
	category := pathParam(c, "category")
	name := pathParam(c, "item")

	item, ok := catalog.ItemInfo(category, name)
	if !ok {
		return Error(c, fiber.StatusNotFound, "item not found")
	}

	return Success(c, fiber.Map{
		"ordinal":     catalog.ItemOrdinal(category, name),
		"name":        item.Name,
		"description": item.Description,
	})
}
