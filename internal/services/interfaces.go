// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"navhub/internal/models"
)

// SiteService manages bookmark records.
type SiteService interface {
	List(q models.SiteListQuery) (*models.SiteListResult, error)
	Create(req *models.SiteCreateRequest, isAdmin bool) (*models.Site, error)
	Update(id int64, req *models.SiteCreateRequest) (*models.Site, error)
	Delete(id int64) error
}

// CategoryService serves category listings for the admin UI picker.
type CategoryService interface {
	List(includePrivate bool) ([]models.Category, error)
}

// HomeService assembles everything the homepage needs for one request.
type HomeService interface {
	BuildHomePage(isAdmin bool, requestedCatalog string) (*HomePage, error)
}

// Auditor records administrative mutations for later review.
type Auditor interface {
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}
