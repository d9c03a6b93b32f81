package evidence

import (
	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// AddInput holds parameters for registering a new evidence item.
type AddInput struct {
	CaseID        uuid.UUID
	ItemNumber    string
	ObjectName    string
	Description   *string
	Color         *string
	Size          *string
	Weight        *string
	FoundLocation *string
	Notes         *string
}

// Validate validates the add input.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}

	if i.ItemNumber == "" {
		errs = append(errs, domain.FieldError{Field: "item_number", Message: "required"})
	} else if len(i.ItemNumber) > 100 {
		errs = append(errs, domain.FieldError{Field: "item_number", Message: "too long"})
	}

	if i.ObjectName == "" {
		errs = append(errs, domain.FieldError{Field: "object_name", Message: "required"})
	} else if len(i.ObjectName) > 255 {
		errs = append(errs, domain.FieldError{Field: "object_name", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Notes != nil && len(*i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the mutable attributes of an evidence item. Optional
// fields left nil are written as NULL, not preserved.
type UpdateInput struct {
	ObjectName    string
	Description   *string
	Color         *string
	Size          *string
	Weight        *string
	FoundLocation *string
	Notes         *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ObjectName == "" {
		errs = append(errs, domain.FieldError{Field: "object_name", Message: "required"})
	} else if len(i.ObjectName) > 255 {
		errs = append(errs, domain.FieldError{Field: "object_name", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Notes != nil && len(*i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
