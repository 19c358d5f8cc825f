package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListCategories, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailGetCategory, "failed to get category", zap.Uint64("category_id", categoryID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}
	input, err := validation.BuildCreateCategoryInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateCategory, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}
	input, err := validation.BuildUpdateCategoryInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateCategory, "failed to update category", zap.Uint64("category_id", categoryID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteCategory, "failed to delete category", zap.Uint64("category_id", categoryID))
		return
	}

	c.Status(http.StatusNoContent)
}
