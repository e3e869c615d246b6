package handlers

import (
	"strings"

	"github.com/rpaiva/warehouse-tracker/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if strings.ContainsAny(p.Name+p.Description+p.Category, "\n\r") {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Fields cannot contain line breaks"})
	}
	return errs
}

func validateAdjustment(a AdjustmentRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if a.Type != models.MovementAdd && a.Type != models.MovementRemove {
		errs = append(errs, ProductValidationError{Field: "Type", Description: "Type must be ADD or REMOVE"})
	}
	if a.Quantity <= 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if strings.ContainsAny(a.Notes, "\n\r") {
		errs = append(errs, ProductValidationError{Field: "Notes", Description: "Notes cannot contain line breaks"})
	}
	return errs
}
