// filepath: internal/initconfig/init.go
package initconfig

import (
	"database/sql"
	"errors"
	"os"

	"navhub/internal/logging"
	"navhub/internal/models"
	"navhub/internal/repository"
	"navhub/internal/services"

	"github.com/BurntSushi/toml"
)

// Run executes the one-time seeding from the given TOML file. Existing
// rows are never touched: categories are matched by name, sites by URL, and
// anything already present is skipped. Errors are logged and the remaining
// entries still get their chance.
func Run(repo *repository.Repository, siteSvc services.SiteService, configPath string) {
	logging.Log.Infof("Seed file found at: %s. Processing...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		logging.Log.Errorf("Failed to read seed file '%s': %v", configPath, err)
		return
	}

	var config InitConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		logging.Log.Errorf("Failed to parse TOML seed file '%s': %v", configPath, err)
		return
	}

	logging.Log.Infof("Found %d categories and %d sites in seed file.",
		len(config.Categories), len(config.Sites))

	ids := processCategories(repo, config.Categories)
	processSites(siteSvc, config.Sites, ids)
}

// processCategories creates missing categories and returns a name-to-id map
// covering both created and pre-existing ones.
func processCategories(repo *repository.Repository, categories []InitCategory) map[string]int64 {
	ids := make(map[string]int64, len(categories))

	for _, c := range categories {
		if c.Name == "" {
			logging.Log.Warn("Skipping category with empty name.")
			continue
		}

		existing, err := repo.CategoryByName(c.Name)
		if err == nil {
			logging.Log.Infof("Skipping category: '%s' already exists.", c.Name)
			ids[c.Name] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			logging.Log.Errorf("Failed to check if category '%s' exists: %v", c.Name, err)
			continue
		}

		logging.Log.Infof("Creating category: '%s'...", c.Name)
		sortOrder := c.SortOrder
		if sortOrder == 0 {
			sortOrder = models.DefaultSortOrder
		}
		created, err := repo.InsertCategory(&models.Category{
			Catelog:   c.Name,
			IsPrivate: c.IsPrivate,
			SortOrder: sortOrder,
		})
		if err != nil {
			logging.Log.Errorf("Failed to create category '%s': %v", c.Name, err)
			continue
		}
		ids[c.Name] = created.ID
	}
	return ids
}

// processSites creates the seed bookmarks through the site service, so the
// usual validation, logo derivation and privacy rules all apply.
func processSites(siteSvc services.SiteService, sites []InitSite, ids map[string]int64) {
	for _, s := range sites {
		if s.Name == "" || s.URL == "" || s.Category == "" {
			logging.Log.Warn("Skipping site with empty name, url or category.")
			continue
		}

		catID, ok := ids[s.Category]
		if !ok {
			logging.Log.Warnf("Skipping site '%s': unknown category '%s'.", s.Name, s.Category)
			continue
		}

		_, err := siteSvc.Create(&models.SiteCreateRequest{
			Name:      s.Name,
			URL:       s.URL,
			Logo:      s.Logo,
			Desc:      s.Desc,
			CatelogID: catID,
			SortOrder: s.SortOrder,
			IsPrivate: s.IsPrivate,
		}, true)
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				logging.Log.Infof("Skipping site: '%s' already exists.", s.URL)
				continue
			}
			logging.Log.Errorf("Failed to create site '%s': %v", s.Name, err)
		}
	}
}
