package handler

import (
	"quiz-form/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Form   *FormHandler
	Page   *PageHandler
	Health *HealthHandler
}

// RegisterRoutes mounts the page, the JSON event API and the health check.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	if h.Page != nil {
		app.Get("/", h.Page.ShowForm)
		app.Post("/", h.Page.SubmitForm)
	}
	if h.Health != nil {
		app.Get("/healthz", h.Health.Health)
	}

	apiGroup := app.Group("/api")
	apiGroup.Get("/schema", h.Form.GetSchema)

	formsGroup := apiGroup.Group("/forms")
	formsGroup.Post("/", h.Form.CreateForm)
	formsGroup.Get("/:id", vm.ValidateFormID(), h.Form.GetForm)
	formsGroup.Delete("/:id", vm.ValidateFormID(), h.Form.DeleteForm)
	formsGroup.Post("/:id/change", vm.ValidateFormID(), vm.ValidateFieldEvent(), h.Form.ChangeField)
	formsGroup.Post("/:id/blur", vm.ValidateFormID(), vm.ValidateFieldEvent(), h.Form.BlurField)
	formsGroup.Post("/:id/submit", vm.ValidateFormID(), h.Form.SubmitForm)
	formsGroup.Post("/:id/reset", vm.ValidateFormID(), h.Form.ResetForm)
	formsGroup.Get("/:id/result", vm.ValidateFormID(), h.Form.GetResult)
}
