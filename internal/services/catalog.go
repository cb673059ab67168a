// filepath: internal/services/catalog.go
package services

import (
	"sort"

	"navhub/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogAll is the explicit request value for the unfiltered listing.
const CatalogAll = "all"

// nameCollator orders category names case-insensitively with Chinese-aware
// collation, so mixed zh/latin menus come out stable and human-sensible.
var nameCollator = collate.New(language.Chinese, collate.IgnoreCase)

// BuildCatalogs derives the ordered category menu from the loaded sites and
// the declared category orders. Per category name: the fallback is the
// minimum site sort_order observed, the order is the declared category
// sort_order when the category table knows the name, else the fallback.
//
// Sort key: order, then fallback, then collated name. The result is a pure
// function of its inputs, independent of row insertion order.
func BuildCatalogs(sites []models.Site, declared map[string]models.Category) []models.CatalogMeta {
	byName := make(map[string]*models.CatalogMeta)
	names := make([]string, 0)

	for _, site := range sites {
		name := site.CatelogName
		if name == "" {
			continue
		}
		order := site.SortOrder
		if order <= 0 {
			order = models.DefaultSortOrder
		}

		meta, ok := byName[name]
		if !ok {
			meta = &models.CatalogMeta{
				Name:     name,
				Fallback: order,
				ID:       site.CatelogID,
			}
			byName[name] = meta
			names = append(names, name)
			continue
		}
		if order < meta.Fallback {
			meta.Fallback = order
		}
	}

	catalogs := make([]models.CatalogMeta, 0, len(names))
	for _, name := range names {
		meta := *byName[name]
		if cat, ok := declared[name]; ok {
			meta.Order = cat.SortOrder
			meta.ID = cat.ID
		} else {
			meta.Order = meta.Fallback
		}
		catalogs = append(catalogs, meta)
	}

	sort.SliceStable(catalogs, func(i, j int) bool {
		a, b := catalogs[i], catalogs[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Fallback != b.Fallback {
			return a.Fallback < b.Fallback
		}
		return nameCollator.CompareString(a.Name, b.Name) < 0
	})
	return catalogs
}

// ResolveCatalog picks the catalog to display. "all" is an explicit request
// for the full listing and always wins, even over a configured default
// category. An empty or unknown selection falls back to the first catalog
// in sorted order rather than to the full listing; that matches the
// behavior users currently see.
func ResolveCatalog(requested, defaultCatalog string, catalogs []models.CatalogMeta) (selected string, showAll bool) {
	if requested == CatalogAll {
		return "", true
	}

	resolved := requested
	if resolved == "" {
		resolved = defaultCatalog
	}

	for _, c := range catalogs {
		if c.Name == resolved {
			return resolved, false
		}
	}

	if len(catalogs) > 0 {
		return catalogs[0].Name, false
	}
	return "", true
}
