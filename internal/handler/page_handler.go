package handler

import (
	"context"
	"time"

	"quiz-form/internal/domain"
	"quiz-form/internal/dto"
	"quiz-form/internal/logger"
	"quiz-form/internal/render"
	"quiz-form/internal/service"
	"quiz-form/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PageHandler serves the HTML form and its classic form post
type PageHandler struct {
	service     service.FormService
	renderer    *render.Renderer
	submitDelay time.Duration
}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler(service service.FormService, renderer *render.Renderer, submitDelay time.Duration) *PageHandler {
	return &PageHandler{
		service:     service,
		renderer:    renderer,
		submitDelay: submitDelay,
	}
}

// session returns the form named by raw, or a new one when raw is blank,
// malformed or expired.
func (h *PageHandler) session(ctx context.Context, raw string) (*dto.FormStateResponse, error) {
	if util.IsULID(raw) {
		state, err := h.service.GetForm(ctx, raw)
		if err == nil {
			return state, nil
		}
		if !domain.HasCode(err, domain.CodeFormNotFound) {
			return nil, err
		}
		logger.Get().Debug("Form session expired, starting a new one", zap.String("form_id", raw))
	}
	return h.service.CreateForm(ctx)
}

// ShowForm godoc
// @Summary Quiz creation page
// @Description Renders the HTML form for a new or existing form session
// @Tags pages
// @Produce html
// @Param formId query string false "Form ID"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *PageHandler) ShowForm(c *fiber.Ctx) error {
	ctx := c.UserContext()
	state, err := h.session(ctx, c.Query("formId"))
	if err != nil {
		return err
	}

	alert := ""
	if state.HasResult && !state.IsSubmitting {
		result, err := h.service.AcknowledgeResult(ctx, state.ID)
		switch {
		case err == nil:
			alert = result.Payload
		case !domain.HasCode(err, domain.CodeResultNotReady):
			return err
		}
	}
	return h.render(c, state, alert, "")
}

// SubmitForm godoc
// @Summary Classic form post
// @Description Applies every posted field as a change and blur, then submits
// @Tags pages
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [post]
func (h *PageHandler) SubmitForm(c *fiber.Ctx) error {
	ctx := c.UserContext()
	state, err := h.session(ctx, c.FormValue("formId"))
	if err != nil {
		return err
	}

	for _, field := range domain.Fields {
		if _, err := h.service.ChangeField(ctx, state.ID, string(field), c.FormValue(string(field))); err != nil {
			return err
		}
		if _, err := h.service.BlurField(ctx, state.ID, string(field)); err != nil {
			return err
		}
	}

	resp, err := h.service.SubmitForm(ctx, state.ID)
	if err != nil {
		if domain.HasCode(err, domain.CodeSubmitInProgress) {
			state, getErr := h.service.GetForm(ctx, state.ID)
			if getErr != nil {
				return getErr
			}
			return h.render(c, state, "", "A submission is already in progress.")
		}
		return err
	}

	notice := ""
	if resp.Accepted {
		notice = "Submitting..."
	}
	return h.render(c, &resp.State, "", notice)
}

func (h *PageHandler) render(c *fiber.Ctx, state *dto.FormStateResponse, alert, notice string) error {
	view, err := render.BuildFormView(h.service.Schema(), state)
	if err != nil {
		return err
	}
	view.Alert = alert
	view.Notice = notice
	view.SubmitDelay = h.submitDelay.Milliseconds()

	html, err := h.renderer.RenderFormString(view)
	if err != nil {
		return domain.NewInternalError("failed to render form page", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
