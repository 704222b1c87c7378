package middleware

import (
	"studybyte/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalSection    = "validated_section"
	LocalMaterialID = "validated_material_id"
)

// ValidationMiddleware validates path parameters before the handlers run
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validator,
	}
}

// ValidateSection validates the :section path parameter
func (vm *ValidationMiddleware) ValidateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		section, errors := vm.validator.ValidateSection(c.Params("section"))
		if len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalSection, section)
		return c.Next()
	}
}

// ValidateMaterialID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateMaterialID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateMaterialID(id); len(errors) > 0 {
			return errors
		}

		c.Locals(LocalMaterialID, id)
		return c.Next()
	}
}
