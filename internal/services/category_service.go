// filepath: internal/services/category_service.go
package services

import (
	"navhub/internal/models"
	"navhub/internal/repository"
)

var _ CategoryService = (*categoryService)(nil)

type categoryService struct {
	repo *repository.Repository
}

// NewCategoryService creates the category listing service.
func NewCategoryService(repo *repository.Repository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(includePrivate bool) ([]models.Category, error) {
	return s.repo.ListCategories(includePrivate)
}
