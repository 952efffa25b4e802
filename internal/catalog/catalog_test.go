package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryItemCountsSumToTotal(t *testing.T) {
	sum := 0
	for _, name := range Categories() {
		items, ok := CategoryItems(name)
		require.True(t, ok, "category %q must exist", name)
		assert.NotEmpty(t, items, "category %q must have items", name)
		sum += len(items)
	}
	assert.Equal(t, TotalItemCount(), sum)
}

func TestChecklistDefinitionIsValid(t *testing.T) {
	require.NoError(t, validate())

	for _, cat := range All() {
		for _, item := range cat.Items {
			assert.NotEmpty(t, item.Name)
			assert.NotEmpty(t, item.Description, "item %q in %q must have guidance text", item.Name, cat.Name)
		}
	}
}

func TestItemOrdinalsAreContiguous(t *testing.T) {
	seen := make(map[int]string)
	expected := 0
	for _, cat := range All() {
		for _, item := range cat.Items {
			expected++
			ord := ItemOrdinal(cat.Name, item.Name)
			assert.Equal(t, expected, ord, "%s / %s", cat.Name, item.Name)
			_, dup := seen[ord]
			assert.False(t, dup, "ordinal %d assigned twice", ord)
			seen[ord] = item.Name
		}
	}
	assert.Len(t, seen, TotalItemCount())
}

func TestItemInfo(t *testing.T) {
	first := All()[0]

	item, ok := ItemInfo(first.Name, first.Items[0].Name)
	require.True(t, ok)
	assert.Equal(t, first.Items[0], item)

	_, ok = ItemInfo(first.Name, "no such item")
	assert.False(t, ok)

	_, ok = ItemInfo("no such category", first.Items[0].Name)
	assert.False(t, ok)

	assert.Equal(t, 0, ItemOrdinal("no such category", "no such item"))
}

func TestCategoryItemsUnknownCategory(t *testing.T) {
	items, ok := CategoryItems("Upholstery & Trim")
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestCatalogShape(t *testing.T) {
	// The checklist is meant to stay in the shape the reports were designed
	// around: around ten categories, each a handful to a dozen items
	assert.GreaterOrEqual(t, len(Categories()), 9)
	assert.LessOrEqual(t, len(Categories()), 12)
	assert.GreaterOrEqual(t, TotalItemCount(), 70)
	assert.LessOrEqual(t, TotalItemCount(), 90)
	for _, cat := range All() {
		assert.GreaterOrEqual(t, len(cat.Items), 4, cat.Name)
		assert.LessOrEqual(t, len(cat.Items), 13, cat.Name)
	}
}
