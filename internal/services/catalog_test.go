// filepath: internal/services/catalog_test.go
package services

import (
	"testing"

	"navhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func site(name, catalog string, catID int64, sortOrder int) models.Site {
	return models.Site{Name: name, CatelogName: catalog, CatelogID: catID, SortOrder: sortOrder}
}

func catalogNames(catalogs []models.CatalogMeta) []string {
	names := make([]string, len(catalogs))
	for i, c := range catalogs {
		names[i] = c.Name
	}
	return names
}

func TestBuildCatalogsDeclaredOrderWins(t *testing.T) {
	sites := []models.Site{
		site("a1", "A", 1, 1),
		site("b1", "B", 2, 5),
	}
	declared := map[string]models.Category{
		"A": {ID: 1, Catelog: "A", SortOrder: 2},
		"B": {ID: 2, Catelog: "B", SortOrder: 1},
	}

	// A's sites sort first, but B's declared order is lower.
	catalogs := BuildCatalogs(sites, declared)
	assert.Equal(t, []string{"B", "A"}, catalogNames(catalogs))
}

func TestBuildCatalogsFallbackToSiteMinimum(t *testing.T) {
	sites := []models.Site{
		site("x1", "X", 1, 30),
		site("x2", "X", 1, 7),
		site("y1", "Y", 2, 12),
	}

	// No category table data at all: per-site minimums decide.
	catalogs := BuildCatalogs(sites, map[string]models.Category{})
	assert.Equal(t, []string{"X", "Y"}, catalogNames(catalogs))
	assert.Equal(t, 7, catalogs[0].Fallback)
	assert.Equal(t, 7, catalogs[0].Order)
}

func TestBuildCatalogsTieBreaks(t *testing.T) {
	sites := []models.Site{
		site("m1", "mango", 1, 3),
		site("b1", "Banana", 2, 3),
		site("a1", "apple", 3, 3),
	}
	declared := map[string]models.Category{
		"mango":  {ID: 1, Catelog: "mango", SortOrder: 1},
		"Banana": {ID: 2, Catelog: "Banana", SortOrder: 1},
		"apple":  {ID: 3, Catelog: "apple", SortOrder: 1},
	}

	// Equal order and fallback: case-insensitive name comparison decides.
	catalogs := BuildCatalogs(sites, declared)
	assert.Equal(t, []string{"apple", "Banana", "mango"}, catalogNames(catalogs))
}

func TestBuildCatalogsDeterministic(t *testing.T) {
	forward := []models.Site{
		site("a1", "A", 1, 2),
		site("b1", "B", 2, 1),
		site("b2", "B", 2, 9),
	}
	reversed := []models.Site{forward[2], forward[1], forward[0]}

	declared := map[string]models.Category{}
	assert.Equal(t,
		catalogNames(BuildCatalogs(forward, declared)),
		catalogNames(BuildCatalogs(reversed, declared)),
	)
}

func TestBuildCatalogsNonPositiveOrderFallsBack(t *testing.T) {
	sites := []models.Site{
		site("z1", "Z", 1, 0),
		site("w1", "W", 2, 5),
	}
	catalogs := BuildCatalogs(sites, map[string]models.Category{})
	// A zero sort_order is treated as unordered, not as top placement.
	assert.Equal(t, []string{"W", "Z"}, catalogNames(catalogs))
	assert.Equal(t, models.DefaultSortOrder, catalogs[1].Fallback)
}

func TestResolveCatalog(t *testing.T) {
	catalogs := []models.CatalogMeta{
		{Name: "Dev", Order: 1},
		{Name: "Tech", Order: 2},
	}

	t.Run("Explicit All Ignores Default", func(t *testing.T) {
		selected, showAll := ResolveCatalog(CatalogAll, "Tech", catalogs)
		assert.True(t, showAll)
		assert.Empty(t, selected)
	})

	t.Run("Known Name Selected", func(t *testing.T) {
		selected, showAll := ResolveCatalog("Tech", "", catalogs)
		assert.False(t, showAll)
		assert.Equal(t, "Tech", selected)
	})

	t.Run("Default Category Applies When Nothing Requested", func(t *testing.T) {
		selected, showAll := ResolveCatalog("", "Tech", catalogs)
		assert.False(t, showAll)
		assert.Equal(t, "Tech", selected)
	})

	t.Run("Unknown Name Falls Back To First Sorted", func(t *testing.T) {
		selected, showAll := ResolveCatalog("Nope", "", catalogs)
		assert.False(t, showAll)
		assert.Equal(t, "Dev", selected)
	})

	t.Run("Unknown Default Falls Back To First Sorted", func(t *testing.T) {
		selected, showAll := ResolveCatalog("", "Gone", catalogs)
		assert.False(t, showAll)
		assert.Equal(t, "Dev", selected)
	})

	t.Run("No Catalogs Shows All", func(t *testing.T) {
		_, showAll := ResolveCatalog("Anything", "", nil)
		assert.True(t, showAll)
	})
}
