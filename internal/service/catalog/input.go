package catalog

import (
	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

const maxNameLength = 255

// validateName checks a user-supplied area or category name.
func validateName(field, name string) []domain.FieldError {
	var errs []domain.FieldError
	if name == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// CreateAreaInput holds parameters for area creation.
type CreateAreaInput struct {
	Name string
}

// Validate validates the create area input.
func (i CreateAreaInput) Validate() error {
	if errs := validateName("name", i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenameAreaInput holds parameters for the area rename operation.
type RenameAreaInput struct {
	AreaID uuid.UUID
	Name   string
}

// Validate validates the rename area input.
func (i RenameAreaInput) Validate() error {
	errs := validateName("name", i.Name)
	if i.AreaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "area_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCategoryInput holds parameters for category creation.
type CreateCategoryInput struct {
	AreaID uuid.UUID
	Name   string
}

// Validate validates the create category input.
func (i CreateCategoryInput) Validate() error {
	errs := validateName("name", i.Name)
	if i.AreaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "area_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCategoryInput holds parameters for the category update operation.
// Both fields replace the stored values.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	AreaID     uuid.UUID
	Name       string
}

// Validate validates the update category input.
func (i UpdateCategoryInput) Validate() error {
	errs := validateName("name", i.Name)
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.AreaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "area_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
