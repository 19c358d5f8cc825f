package domain

import (
	"regexp"
	"time"
)

const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "folder"
)

var categoryColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Category struct {
	ID          uint64
	Name        string
	Color       string
	Icon        string
	Description *string
	TaskCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidCategoryColor(color string) bool {
	return categoryColorPattern.MatchString(color)
}

type CreateCategoryInput struct {
	Name        string
	Color       string
	Icon        string
	Description *string
}

type UpdateCategoryInput struct {
	Name           *string
	Color          *string
	Icon           *string
	Description    *string
	DescriptionSet bool
}

// DefaultCategories are seeded into an empty store.
func DefaultCategories() []CreateCategoryInput {
	describe := func(s string) *string { return &s }
	return []CreateCategoryInput{
		{Name: "Work", Color: "#10B981", Icon: "briefcase", Description: describe("Work-related tasks")},
		{Name: "Personal", Color: "#3B82F6", Icon: "user", Description: describe("Personal tasks")},
		{Name: "Shopping", Color: "#F59E0B", Icon: "shopping-cart", Description: describe("Shopping lists")},
		{Name: "Health", Color: "#EF4444", Icon: "heart", Description: describe("Health and fitness tasks")},
	}
}
