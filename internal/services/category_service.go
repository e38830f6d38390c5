package services

import (
	"context"
	"strings"

	"beresinBack/internal/models"
)

type CategoryService struct {
	CategoryRepo CategoryStore
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetAll(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if strings.TrimSpace(c.NameOfCategory) == "" {
		return models.Category{}, &models.ValidationError{Messages: []string{"Nama kategori wajib diisi."}}
	}
	return s.CategoryRepo.Create(ctx, c)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if strings.TrimSpace(c.NameOfCategory) == "" {
		return models.Category{}, &models.ValidationError{Messages: []string{"Nama kategori wajib diisi."}}
	}
	return s.CategoryRepo.UpdateByID(ctx, c)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.CategoryRepo.DeleteByID(ctx, id)
}
