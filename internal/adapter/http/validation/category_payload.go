package validation

import (
	"encoding/json"
	"strings"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func BuildCreateCategoryInput(req dto.CreateCategoryRequest, raw map[string]json.RawMessage) (domain.CreateCategoryInput, error) {
	if isExplicitNull(raw, "color") || isExplicitNull(raw, "icon") {
		return domain.CreateCategoryInput{}, ErrInvalidCategoryPayload
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateCategoryInput{}, ErrInvalidCategoryPayload
	}

	input := domain.CreateCategoryInput{
		Name:        name,
		Color:       domain.DefaultCategoryColor,
		Icon:        domain.DefaultCategoryIcon,
		Description: req.Description,
	}
	if req.Color != nil {
		if !domain.ValidCategoryColor(*req.Color) {
			return domain.CreateCategoryInput{}, ErrInvalidCategoryPayload
		}
		input.Color = *req.Color
	}
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		if icon == "" {
			return domain.CreateCategoryInput{}, ErrInvalidCategoryPayload
		}
		input.Icon = icon
	}
	return input, nil
}

func BuildUpdateCategoryInput(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.UpdateCategoryInput, error) {
	if !hasAnyJSONField(raw, "name", "color", "icon", "description") {
		return domain.UpdateCategoryInput{}, ErrInvalidCategoryPayload
	}
	for _, field := range []string{"name", "color", "icon"} {
		if isExplicitNull(raw, field) {
			return domain.UpdateCategoryInput{}, ErrInvalidCategoryPayload
		}
	}

	input := domain.UpdateCategoryInput{
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateCategoryInput{}, ErrInvalidCategoryPayload
		}
		input.Name = &name
	}
	if req.Color != nil {
		if !domain.ValidCategoryColor(*req.Color) {
			return domain.UpdateCategoryInput{}, ErrInvalidCategoryPayload
		}
		input.Color = req.Color
	}
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		if icon == "" {
			return domain.UpdateCategoryInput{}, ErrInvalidCategoryPayload
		}
		input.Icon = &icon
	}
	return input, nil
}
