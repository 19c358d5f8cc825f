package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error
	CountCategories(ctx context.Context) (int, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error
	SeedDefaults(ctx context.Context) (int, error)
}
