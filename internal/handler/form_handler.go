package handler

import (
	"quiz-form/internal/domain"
	"quiz-form/internal/middleware"
	"quiz-form/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FormHandler handles the JSON event API of form sessions
type FormHandler struct {
	service service.FormService
}

// NewFormHandler creates a new FormHandler instance
func NewFormHandler(service service.FormService) *FormHandler {
	return &FormHandler{
		service: service,
	}
}

func formID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalFormID).(string); ok {
		return id
	}
	return c.Params("id")
}

// CreateForm godoc
// @Summary Create a form session
// @Description Starts a blank quiz creation form
// @Tags forms
// @Produce json
// @Success 201 {object} dto.FormStateResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/forms [post]
func (h *FormHandler) CreateForm(c *fiber.Ctx) error {
	state, err := h.service.CreateForm(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetForm godoc
// @Summary Get form state
// @Description Returns values, errors, touched and dirty flags of a form session
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} dto.FormStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/forms/{id} [get]
func (h *FormHandler) GetForm(c *fiber.Ctx) error {
	state, err := h.service.GetForm(c.UserContext(), formID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// ChangeField godoc
// @Summary Report a change event
// @Description Stores a new field value and revalidates the form
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param event body dto.FieldChangeRequest true "Change event"
// @Success 200 {object} dto.FormStateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/forms/{id}/change [post]
func (h *FormHandler) ChangeField(c *fiber.Ctx) error {
	field, _ := c.Locals(middleware.LocalField).(domain.FieldName)
	value, _ := c.Locals(middleware.LocalValue).(string)

	state, err := h.service.ChangeField(c.UserContext(), formID(c), string(field), value)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// BlurField godoc
// @Summary Report a blur event
// @Description Marks a field as touched
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param event body dto.FieldBlurRequest true "Blur event"
// @Success 200 {object} dto.FormStateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/forms/{id}/blur [post]
func (h *FormHandler) BlurField(c *fiber.Ctx) error {
	field, _ := c.Locals(middleware.LocalField).(domain.FieldName)

	state, err := h.service.BlurField(c.UserContext(), formID(c), string(field))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// SubmitForm godoc
// @Summary Submit the form
// @Description Touches every field and validates. Accepted submissions complete after the configured delay.
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 202 {object} dto.SubmitResponse "Accepted"
// @Success 200 {object} dto.SubmitResponse "Blocked by failing fields"
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/forms/{id}/submit [post]
func (h *FormHandler) SubmitForm(c *fiber.Ctx) error {
	resp, err := h.service.SubmitForm(c.UserContext(), formID(c))
	if err != nil {
		return err
	}
	if resp.Accepted {
		return c.Status(fiber.StatusAccepted).JSON(resp)
	}
	return c.JSON(resp)
}

// ResetForm godoc
// @Summary Reset the form
// @Description Restores initial values and clears touched and dirty flags
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} dto.FormStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/forms/{id}/reset [post]
func (h *FormHandler) ResetForm(c *fiber.Ctx) error {
	state, err := h.service.ResetForm(c.UserContext(), formID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// DeleteForm godoc
// @Summary Delete a form session
// @Description Drops the session and its last result
// @Tags forms
// @Param id path string true "Form ID"
// @Success 204 "No Content"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *fiber.Ctx) error {
	if err := h.service.DeleteForm(c.UserContext(), formID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetResult godoc
// @Summary Get the last completed submission
// @Description Returns the serialized values of the last completed submission. format=text returns the alert text only. ack=true returns a result only the first time it is asked for.
// @Tags forms
// @Produce json,plain
// @Param id path string true "Form ID"
// @Param format query string false "json or text"
// @Param ack query bool false "Mark the result as shown"
// @Success 200 {object} dto.SubmissionResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/forms/{id}/result [get]
func (h *FormHandler) GetResult(c *fiber.Ctx) error {
	get := h.service.GetResult
	if c.QueryBool("ack") {
		get = h.service.AcknowledgeResult
	}
	result, err := get(c.UserContext(), formID(c))
	if err != nil {
		return err
	}
	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(result.Payload)
	}
	return c.JSON(result)
}

// GetSchema godoc
// @Summary Get the form schema
// @Description Returns fields, controls, options and rules of the quiz form
// @Tags forms
// @Produce json
// @Success 200 {object} schema.Schema
// @Router /api/schema [get]
func (h *FormHandler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(h.service.Schema())
}
