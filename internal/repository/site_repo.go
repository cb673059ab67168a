// filepath: internal/repository/site_repo.go
package repository

import (
	"database/sql"
	"fmt"

	"navhub/internal/logging"
	"navhub/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// siteColumns is the select list shared by every site query. "desc" is a
// SQL keyword and must stay quoted.
var siteColumns = []string{
	"id", "name", "url", "logo", `"desc"`,
	"catelog_id", "catelog_name", "sort_order", "is_private", "create_time",
}

// siteFilter builds the WHERE predicate shared by the page query and the
// count query of a listing request.
func siteFilter(q models.SiteListQuery) sq.And {
	pred := sq.And{}

	if !q.IncludePrivate {
		pred = append(pred, sq.Eq{"is_private": 0})
	}

	if q.CatalogID > 0 {
		// Explicit id beats a name filter.
		pred = append(pred, sq.Eq{"catelog_id": q.CatalogID})
	} else if q.Catalog != "" {
		pred = append(pred, sq.Eq{"catelog_name": q.Catalog})
	}

	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		pred = append(pred, sq.Or{
			sq.Like{"name": like},
			sq.Like{"url": like},
			sq.Like{"catelog_name": like},
			sq.Like{`"desc"`: like},
		})
	}

	return pred
}

// ListSites returns one page of sites matching the query, ordered by
// sort_order ascending then create_time descending.
func (s *Repository) ListSites(q models.SiteListQuery) ([]models.Site, error) {
	offset := (q.Page - 1) * q.PageSize

	query, args, err := s.Builder.
		Select(siteColumns...).
		From("sites").
		Where(siteFilter(q)).
		OrderBy("sort_order ASC", "create_time DESC").
		Limit(uint64(q.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("Generated SQL for ListSites: %s", query)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorf("Error executing ListSites query: %v", err)
		return nil, err
	}
	defer rows.Close()

	sites := make([]models.Site, 0)
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			logging.Log.Errorf("Error scanning site row: %v", err)
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}

// CountSites returns the number of rows matching the same predicate
// ListSites uses.
func (s *Repository) CountSites(q models.SiteListQuery) (int, error) {
	query, args, err := s.Builder.
		Select("COUNT(*)").
		From("sites").
		Where(siteFilter(q)).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := s.DB.QueryRow(query, args...).Scan(&total); err != nil {
		logging.Log.Errorf("Error executing CountSites query: %v", err)
		return 0, err
	}
	return total, nil
}

// LoadHomeSites returns every site visible on the homepage, joined to its
// category so that a private category hides its sites as a whole.
func (s *Repository) LoadHomeSites(includePrivate bool) ([]models.Site, error) {
	builder := s.Builder.
		Select(
			"s.id", "s.name", "s.url", "s.logo", `s."desc"`,
			"s.catelog_id", "s.catelog_name", "s.sort_order", "s.is_private", "s.create_time",
		).
		From("sites s").
		InnerJoin("category c ON s.catelog_id = c.id").
		OrderBy("s.sort_order ASC", "s.create_time DESC")

	if !includePrivate {
		builder = builder.Where(sq.Eq{"s.is_private": 0, "c.is_private": 0})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorf("Error executing LoadHomeSites query: %v", err)
		return nil, err
	}
	defer rows.Close()

	sites := make([]models.Site, 0)
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}

// SiteURLExists probes for an existing site with the given URL.
func (s *Repository) SiteURLExists(url string) (bool, error) {
	var id int64
	err := s.DB.QueryRow("SELECT id FROM sites WHERE url = ?", url).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetSite retrieves a single site by id.
func (s *Repository) GetSite(id int64) (*models.Site, error) {
	query, args, err := s.Builder.
		Select(siteColumns...).
		From("sites").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	site, err := scanSite(rows)
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// InsertSite stores a new site and returns it with its generated id and
// create_time filled in.
func (s *Repository) InsertSite(site *models.Site) (*models.Site, error) {
	query := `
		INSERT INTO sites (name, url, logo, "desc", catelog_id, catelog_name, sort_order, is_private)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := s.DB.Exec(query,
		site.Name, site.URL, nullableString(site.Logo), nullableString(site.Desc),
		site.CatelogID, site.CatelogName, site.SortOrder, boolToInt(site.IsPrivate),
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetSite(id)
}

// UpdateSite rewrites every mutable column of the site row.
func (s *Repository) UpdateSite(site *models.Site) error {
	query := `
		UPDATE sites
		SET name = ?, url = ?, logo = ?, "desc" = ?,
		    catelog_id = ?, catelog_name = ?, sort_order = ?, is_private = ?
		WHERE id = ?
	`
	res, err := s.DB.Exec(query,
		site.Name, site.URL, nullableString(site.Logo), nullableString(site.Desc),
		site.CatelogID, site.CatelogName, site.SortOrder, boolToInt(site.IsPrivate),
		site.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteSite removes a site by id. Returns false when no row matched.
func (s *Repository) DeleteSite(id int64) (bool, error) {
	res, err := s.DB.Exec("DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanSite scans one row of the shared site select list.
func scanSite(rows *sql.Rows) (models.Site, error) {
	var (
		site        models.Site
		logo        sql.NullString
		desc        sql.NullString
		catelogName sql.NullString
		isPrivate   int
	)
	err := rows.Scan(
		&site.ID, &site.Name, &site.URL, &logo, &desc,
		&site.CatelogID, &catelogName, &site.SortOrder, &isPrivate, &site.CreateTime,
	)
	if err != nil {
		return models.Site{}, fmt.Errorf("failed to scan site row: %w", err)
	}
	if logo.Valid {
		site.Logo = &logo.String
	}
	if desc.Valid {
		site.Desc = &desc.String
	}
	site.CatelogName = catelogName.String
	site.IsPrivate = isPrivate != 0
	return site, nil
}

func nullableString(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
