// filepath: internal/repository/category_repo.go
package repository

import (
	"database/sql"
	"strings"

	"navhub/internal/logging"
	"navhub/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// GetCategory retrieves a category by id.
func (s *Repository) GetCategory(id int64) (*models.Category, error) {
	var (
		cat       models.Category
		isPrivate int
	)
	err := s.DB.QueryRow(
		"SELECT id, catelog, is_private, sort_order FROM category WHERE id = ?", id,
	).Scan(&cat.ID, &cat.Catelog, &isPrivate, &cat.SortOrder)
	if err != nil {
		return nil, err
	}
	cat.IsPrivate = isPrivate != 0
	return &cat, nil
}

// ListCategories returns categories ordered by their declared sort_order,
// optionally including private ones.
func (s *Repository) ListCategories(includePrivate bool) ([]models.Category, error) {
	builder := s.Builder.
		Select("id", "catelog", "is_private", "sort_order").
		From("category").
		OrderBy("sort_order ASC", "catelog ASC")
	if !includePrivate {
		builder = builder.Where(sq.Eq{"is_private": 0})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]models.Category, 0)
	for rows.Next() {
		var (
			cat       models.Category
			isPrivate int
		)
		if err := rows.Scan(&cat.ID, &cat.Catelog, &isPrivate, &cat.SortOrder); err != nil {
			return nil, err
		}
		cat.IsPrivate = isPrivate != 0
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

// CategoryOrders loads the declared sort_order of every category, keyed by
// display name. A database that predates the category table is tolerated:
// the homepage then orders purely by per-site minimums. Any other failure
// is returned to the caller.
func (s *Repository) CategoryOrders() (map[string]models.Category, error) {
	rows, err := s.DB.Query("SELECT id, catelog, is_private, sort_order FROM category")
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			logging.Log.Warnf("category table missing, falling back to per-site ordering: %v", err)
			return map[string]models.Category{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	orders := make(map[string]models.Category)
	for rows.Next() {
		var (
			cat       models.Category
			isPrivate int
		)
		if err := rows.Scan(&cat.ID, &cat.Catelog, &isPrivate, &cat.SortOrder); err != nil {
			return nil, err
		}
		cat.IsPrivate = isPrivate != 0
		orders[cat.Catelog] = cat
	}
	return orders, rows.Err()
}

// CategoryNameByID resolves a category id to its display name.
func (s *Repository) CategoryNameByID(id int64) (string, error) {
	var name string
	err := s.DB.QueryRow("SELECT catelog FROM category WHERE id = ?", id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", err
	}
	return name, err
}

// CategoryByName looks a category up by its display name. sql.ErrNoRows when
// absent.
func (s *Repository) CategoryByName(name string) (*models.Category, error) {
	var (
		cat       models.Category
		isPrivate int
	)
	err := s.DB.QueryRow(
		"SELECT id, catelog, is_private, sort_order FROM category WHERE catelog = ?", name,
	).Scan(&cat.ID, &cat.Catelog, &isPrivate, &cat.SortOrder)
	if err != nil {
		return nil, err
	}
	cat.IsPrivate = isPrivate != 0
	return &cat, nil
}

// InsertCategory creates a category and returns it with its assigned id.
func (s *Repository) InsertCategory(cat *models.Category) (*models.Category, error) {
	query, args, err := s.Builder.
		Insert("category").
		Columns("catelog", "is_private", "sort_order").
		Values(cat.Catelog, boolToInt(cat.IsPrivate), cat.SortOrder).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetCategory(id)
}
