package middleware

import (
	"strings"

	"quiz-form/internal/domain"
	"quiz-form/internal/dto"
	"quiz-form/internal/util"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalFormID = "validated_form_id"
	LocalField  = "validated_field"
	LocalValue  = "validated_value"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateFormID checks the :id path parameter is a ULID.
func (vm *ValidationMiddleware) ValidateFormID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		formID := strings.TrimSpace(c.Params("id"))
		if formID == "" {
			return domain.ValidationErrors{{Field: "id", Message: "form id is required"}}
		}
		if !util.IsULID(formID) {
			return domain.ValidationErrors{{Field: "id", Message: "form id must be a ULID"}}
		}

		c.Locals(LocalFormID, formID)
		return c.Next()
	}
}

// ValidateFieldEvent parses a change or blur body and checks the field name.
// The value is optional so blur bodies pass through the same check.
func (vm *ValidationMiddleware) ValidateFieldEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.FieldChangeRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}

		field, err := domain.ParseFieldName(strings.TrimSpace(req.Field))
		if err != nil {
			return err
		}

		c.Locals(LocalField, field)
		c.Locals(LocalValue, req.Value)
		return c.Next()
	}
}
