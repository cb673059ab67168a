// filepath: internal/repository/repository_test.go
package repository

import (
	"path/filepath"
	"testing"

	"navhub/internal/config"
	"navhub/internal/models"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_navhub.db")
	dummyCfg := &config.Config{
		Database: config.DatabaseConfig{Path: dbPath},
	}

	repo, err := NewRepository(dummyCfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}

	if err := repo.Migrate("up"); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}

	cleanup := func() {
		repo.Close()
	}
	return repo, cleanup
}

// seedCategory inserts a category row directly and returns its id.
func seedCategory(t *testing.T, repo *Repository, name string, isPrivate bool, sortOrder int) int64 {
	t.Helper()
	res, err := repo.DB.Exec(
		"INSERT INTO category (catelog, is_private, sort_order) VALUES (?, ?, ?)",
		name, boolToInt(isPrivate), sortOrder,
	)
	if err != nil {
		t.Fatalf("Failed to seed category %q: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedSite inserts a site through the repository path.
func seedSite(t *testing.T, repo *Repository, name, url string, catID int64, catName string, sortOrder int, private bool) *models.Site {
	t.Helper()
	site, err := repo.InsertSite(&models.Site{
		Name:        name,
		URL:         url,
		CatelogID:   catID,
		CatelogName: catName,
		SortOrder:   sortOrder,
		IsPrivate:   private,
	})
	if err != nil {
		t.Fatalf("Failed to seed site %q: %v", name, err)
	}
	return site
}

func TestNewRepository(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	tables := []string{"sites", "category", "settings"}
	for _, table := range tables {
		var name string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestMigrationAddsVisibilityColumns(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Both columns come from the second migration step.
	for _, col := range []string{"is_private", "catelog_name"} {
		var count int
		err := repo.DB.QueryRow(
			"SELECT COUNT(*) FROM pragma_table_info('sites') WHERE name = ?", col,
		).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("Column '%s' missing from sites table (err=%v)", col, err)
		}
	}
}
