package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:          category.ID,
		Name:        category.Name,
		Color:       category.Color,
		Icon:        category.Icon,
		Description: copyString(category.Description),
		TaskCount:   category.TaskCount,
		CreatedAt:   formatTime(category.CreatedAt),
		UpdatedAt:   formatTime(category.UpdatedAt),
	}
}
