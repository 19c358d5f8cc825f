package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const (
	maxCategoryNameLength = 100
	maxCategoryIconLength = 50
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context) (categories []domain.Category, err error) {
	ctx, span := startSpan(ctx, "CategoryService.ListCategories")
	defer func() { endSpan(span, err) }()

	return s.categoryRepository.ListCategories(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID uint64) (category domain.Category, err error) {
	ctx, span := startSpan(ctx, "CategoryService.GetCategory", attribute.Int64("category.id", int64(categoryID)))
	defer func() { endSpan(span, err) }()

	return s.categoryRepository.GetCategory(ctx, categoryID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (category domain.Category, err error) {
	ctx, span := startSpan(ctx, "CategoryService.CreateCategory")
	defer func() { endSpan(span, err) }()

	name, err := normalizeCategoryName(input.Name)
	if err != nil {
		return domain.Category{}, err
	}
	input.Name = name

	if input.Color == "" {
		input.Color = domain.DefaultCategoryColor
	}
	if !domain.ValidCategoryColor(input.Color) {
		return domain.Category{}, fmt.Errorf("%w: color must look like #RRGGBB", domain.ErrInvalidCategory)
	}

	input.Icon = strings.TrimSpace(input.Icon)
	if input.Icon == "" {
		input.Icon = domain.DefaultCategoryIcon
	}
	if utf8.RuneCountInString(input.Icon) > maxCategoryIconLength {
		return domain.Category{}, fmt.Errorf("%w: icon exceeds %d characters", domain.ErrInvalidCategory, maxCategoryIconLength)
	}

	return s.categoryRepository.CreateCategory(ctx, input)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID uint64, input domain.UpdateCategoryInput) (category domain.Category, err error) {
	ctx, span := startSpan(ctx, "CategoryService.UpdateCategory", attribute.Int64("category.id", int64(categoryID)))
	defer func() { endSpan(span, err) }()

	if input.Name != nil {
		name, err := normalizeCategoryName(*input.Name)
		if err != nil {
			return domain.Category{}, err
		}
		input.Name = &name
	}
	if input.Color != nil && !domain.ValidCategoryColor(*input.Color) {
		return domain.Category{}, fmt.Errorf("%w: color must look like #RRGGBB", domain.ErrInvalidCategory)
	}
	if input.Icon != nil {
		icon := strings.TrimSpace(*input.Icon)
		if icon == "" || utf8.RuneCountInString(icon) > maxCategoryIconLength {
			return domain.Category{}, fmt.Errorf("%w: icon must be 1 to %d characters", domain.ErrInvalidCategory, maxCategoryIconLength)
		}
		input.Icon = &icon
	}

	return s.categoryRepository.UpdateCategory(ctx, categoryID, input)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID uint64) (err error) {
	ctx, span := startSpan(ctx, "CategoryService.DeleteCategory", attribute.Int64("category.id", int64(categoryID)))
	defer func() { endSpan(span, err) }()

	return s.categoryRepository.DeleteCategory(ctx, categoryID)
}

// SeedDefaults inserts the default categories when none exist yet and reports
// how many were created.
func (s *CategoryService) SeedDefaults(ctx context.Context) (created int, err error) {
	ctx, span := startSpan(ctx, "CategoryService.SeedDefaults")
	defer func() { endSpan(span, err) }()

	count, err := s.categoryRepository.CountCategories(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, input := range domain.DefaultCategories() {
		if _, err := s.categoryRepository.CreateCategory(ctx, input); err != nil {
			return created, fmt.Errorf("seed category %q: %w", input.Name, err)
		}
		created++
	}

	zap.L().Info("seeded default categories", zap.Int("count", created))
	return created, nil
}

func normalizeCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidCategory)
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidCategory, maxCategoryNameLength)
	}
	return name, nil
}
