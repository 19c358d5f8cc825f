package validation

import (
	"encoding/json"
	"strings"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func BuildCreateSubtaskInput(req dto.CreateSubtaskRequest, raw map[string]json.RawMessage) (domain.CreateSubtaskInput, error) {
	if isExplicitNull(raw, "completed") {
		return domain.CreateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	input := domain.CreateSubtaskInput{Title: title, Description: req.Description}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}
	return input, nil
}

func BuildUpdateSubtaskInput(req dto.UpdateSubtaskRequest, raw map[string]json.RawMessage) (domain.UpdateSubtaskInput, error) {
	if !hasAnyJSONField(raw, "title", "description", "completed") {
		return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
	}
	if isExplicitNull(raw, "title") || isExplicitNull(raw, "completed") {
		return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	input := domain.UpdateSubtaskInput{
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		Completed:      req.Completed,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
		}
		input.Title = &title
	}
	return input, nil
}
