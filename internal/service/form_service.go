package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"quiz-form/internal/domain"
	"quiz-form/internal/dto"
	"quiz-form/internal/formstate"
	"quiz-form/internal/logger"
	"quiz-form/internal/metrics"
	"quiz-form/internal/schema"
	"quiz-form/internal/util"

	"go.uber.org/zap"
)

// FormService drives quiz creation forms kept as sessions.
type FormService interface {
	CreateForm(ctx context.Context) (*dto.FormStateResponse, error)
	GetForm(ctx context.Context, formID string) (*dto.FormStateResponse, error)
	ChangeField(ctx context.Context, formID, field, value string) (*dto.FormStateResponse, error)
	BlurField(ctx context.Context, formID, field string) (*dto.FormStateResponse, error)
	SubmitForm(ctx context.Context, formID string) (*dto.SubmitResponse, error)
	ResetForm(ctx context.Context, formID string) (*dto.FormStateResponse, error)
	GetResult(ctx context.Context, formID string) (*dto.SubmissionResultResponse, error)
	AcknowledgeResult(ctx context.Context, formID string) (*dto.SubmissionResultResponse, error)
	DeleteForm(ctx context.Context, formID string) error
	Schema() *schema.Schema
}

// FormServiceOption configures the form service.
type FormServiceOption func(*formService)

// WithDisplayMode sets the error display mode of new forms.
func WithDisplayMode(mode domain.DisplayMode) FormServiceOption {
	return func(s *formService) {
		if mode != "" {
			s.mode = mode
		}
	}
}

// WithRecorder attaches metrics.
func WithRecorder(r *metrics.Recorder) FormServiceOption {
	return func(s *formService) {
		s.recorder = r
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) FormServiceOption {
	return func(s *formService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCompletionTimeout bounds the store access done when a submission completes.
func WithCompletionTimeout(d time.Duration) FormServiceOption {
	return func(s *formService) {
		if d > 0 {
			s.completionTimeout = d
		}
	}
}

type formService struct {
	store     FormSessionStore
	validator *schema.Validator
	submitter Submitter
	sink      CompletionSink
	recorder  *metrics.Recorder
	mode      domain.DisplayMode
	now       func() time.Time

	completionTimeout time.Duration

	// mu serialises load-mutate-save cycles so concurrent events on one
	// session are not lost.
	mu sync.Mutex
}

// NewFormService creates a new form service.
func NewFormService(store FormSessionStore, validator *schema.Validator, submitter Submitter, sink CompletionSink, opts ...FormServiceOption) FormService {
	s := &formService{
		store:             store,
		validator:         validator,
		submitter:         submitter,
		sink:              sink,
		mode:              domain.DisplayTouched,
		now:               time.Now,
		completionTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sink == nil {
		s.sink = LoggingSink{}
	}
	return s
}

func (s *formService) Schema() *schema.Schema {
	return s.validator.Schema()
}

func (s *formService) restore(session *domain.FormSession) *formstate.Form {
	return formstate.Restore(s.validator, session.State, formstate.WithDisplayMode(session.Mode))
}

func (s *formService) CreateForm(ctx context.Context) (*dto.FormStateResponse, error) {
	now := s.now()
	form := formstate.New(s.validator, formstate.WithDisplayMode(s.mode))
	session := &domain.FormSession{
		ID:        util.NewULID(),
		Mode:      form.Mode(),
		State:     form.State(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.recorder.Event("create")
	logger.Get().Debug("Created form session", zap.String("form_id", session.ID), zap.String("mode", string(session.Mode)))
	return toStateResponse(session, form), nil
}

func (s *formService) GetForm(ctx context.Context, formID string) (*dto.FormStateResponse, error) {
	session, err := s.store.Load(ctx, formID)
	if err != nil {
		return nil, err
	}
	return toStateResponse(session, s.restore(session)), nil
}

// mutate runs fn on the restored form of formID and saves the result.
func (s *formService) mutate(ctx context.Context, formID string, fn func(*domain.FormSession, *formstate.Form) error) (*domain.FormSession, *formstate.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Load(ctx, formID)
	if err != nil {
		return nil, nil, err
	}
	form := s.restore(session)
	if err := fn(session, form); err != nil {
		return session, form, err
	}
	session.State = form.State()
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, form, nil
}

func (s *formService) ChangeField(ctx context.Context, formID, field, value string) (*dto.FormStateResponse, error) {
	name, err := domain.ParseFieldName(field)
	if err != nil {
		return nil, err
	}
	session, form, err := s.mutate(ctx, formID, func(_ *domain.FormSession, form *formstate.Form) error {
		return form.HandleChange(name, value)
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Event("change")
	return toStateResponse(session, form), nil
}

func (s *formService) BlurField(ctx context.Context, formID, field string) (*dto.FormStateResponse, error) {
	name, err := domain.ParseFieldName(field)
	if err != nil {
		return nil, err
	}
	session, form, err := s.mutate(ctx, formID, func(_ *domain.FormSession, form *formstate.Form) error {
		return form.HandleBlur(name)
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Event("blur")
	return toStateResponse(session, form), nil
}

func (s *formService) ResetForm(ctx context.Context, formID string) (*dto.FormStateResponse, error) {
	session, form, err := s.mutate(ctx, formID, func(session *domain.FormSession, form *formstate.Form) error {
		if form.IsSubmitting() {
			return domain.NewSubmitInProgressError(session.ID)
		}
		form.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Event("reset")
	return toStateResponse(session, form), nil
}

// SubmitForm validates the form. A blocked submission is not an error: the
// response carries Accepted=false and the failing fields. An accepted one
// completes after the submitter's delay.
func (s *formService) SubmitForm(ctx context.Context, formID string) (*dto.SubmitResponse, error) {
	var (
		final   domain.FormValues
		blocked domain.ValidationErrors
	)
	session, form, err := s.mutate(ctx, formID, func(session *domain.FormSession, form *formstate.Form) error {
		values, err := form.Submit()
		if err != nil {
			if domain.HasCode(err, domain.CodeSubmitInProgress) {
				return domain.NewSubmitInProgressError(session.ID)
			}
			if !errors.As(err, &blocked) {
				return err
			}
			return nil
		}
		final = values
		if session.LastResult != nil {
			session.LastResult.Shown = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(blocked) > 0 {
		s.recorder.Submission("blocked")
		for _, e := range blocked {
			s.recorder.FieldFailure(e.Field)
		}
		logger.Get().Debug("Form submission blocked", zap.String("form_id", formID), zap.Int("error_count", len(blocked)))
		return &dto.SubmitResponse{
			Accepted: false,
			Errors:   blocked,
			State:    *toStateResponse(session, form),
		}, nil
	}

	if err := s.submitter.Schedule(func() { s.complete(formID, final) }); err != nil {
		s.rollbackSubmitting(ctx, formID)
		return nil, domain.NewInternalError("failed to schedule form submission", err)
	}
	s.recorder.Submission("accepted")
	logger.Get().Info("Form submission accepted", zap.String("form_id", formID))

	return &dto.SubmitResponse{
		Accepted: true,
		State:    *toStateResponse(session, form),
	}, nil
}

func (s *formService) rollbackSubmitting(ctx context.Context, formID string) {
	_, _, err := s.mutate(ctx, formID, func(_ *domain.FormSession, form *formstate.Form) error {
		form.CompleteSubmit()
		return nil
	})
	if err != nil {
		logger.Get().Error("Failed to clear submitting flag", zap.String("form_id", formID), zap.Error(err))
	}
}

// complete delivers the submitted values to the sink exactly once, records
// the result on the session and clears the submitting flag.
func (s *formService) complete(formID string, values domain.FormValues) {
	ctx, cancel := context.WithTimeout(context.Background(), s.completionTimeout)
	defer cancel()

	payload, err := EncodePayload(values)
	if err != nil {
		logger.Get().Error("Failed to encode submission", zap.String("form_id", formID), zap.Error(err))
		return
	}
	completedAt := s.now()
	s.sink.Complete(ctx, Completion{
		FormID:      formID,
		Values:      values,
		Payload:     payload,
		CompletedAt: completedAt,
	})
	s.recorder.Submission("completed")

	_, _, err = s.mutate(ctx, formID, func(session *domain.FormSession, form *formstate.Form) error {
		form.CompleteSubmit()
		session.LastResult = &domain.Submission{
			Values:      values,
			Payload:     payload,
			CompletedAt: completedAt,
		}
		return nil
	})
	if err != nil {
		logger.Get().Warn("Submission completed but session could not be updated",
			zap.String("form_id", formID),
			zap.Error(err),
		)
	}
}

func (s *formService) GetResult(ctx context.Context, formID string) (*dto.SubmissionResultResponse, error) {
	session, err := s.store.Load(ctx, formID)
	if err != nil {
		return nil, err
	}
	if session.LastResult == nil {
		return nil, domain.NewResultNotReadyError(formID)
	}
	return toResultResponse(session.ID, session.LastResult), nil
}

// AcknowledgeResult returns the last completed submission once. Later calls,
// and calls made after a newer submission was accepted, report
// RESULT_NOT_READY.
func (s *formService) AcknowledgeResult(ctx context.Context, formID string) (*dto.SubmissionResultResponse, error) {
	var result domain.Submission
	_, _, err := s.mutate(ctx, formID, func(session *domain.FormSession, _ *formstate.Form) error {
		if session.LastResult == nil || session.LastResult.Shown {
			return domain.NewResultNotReadyError(formID)
		}
		session.LastResult.Shown = true
		result = *session.LastResult
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResultResponse(formID, &result), nil
}

// DeleteForm drops a session. A session with a pending submission is kept
// until the submission completes.
func (s *formService) DeleteForm(ctx context.Context, formID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Load(ctx, formID)
	if err != nil {
		return err
	}
	if session.State.Submitting {
		return domain.NewSubmitInProgressError(formID)
	}
	if err := s.store.Delete(ctx, formID); err != nil {
		return err
	}
	s.recorder.Event("delete")
	logger.Get().Debug("Deleted form session", zap.String("form_id", formID))
	return nil
}

func toResultResponse(formID string, result *domain.Submission) *dto.SubmissionResultResponse {
	return &dto.SubmissionResultResponse{
		FormID:      formID,
		Values:      result.Values,
		Payload:     result.Payload,
		CompletedAt: result.CompletedAt,
	}
}

func toStateResponse(session *domain.FormSession, form *formstate.Form) *dto.FormStateResponse {
	state := form.State()
	resp := &dto.FormStateResponse{
		ID:            session.ID,
		Mode:          string(form.Mode()),
		Values:        state.Values,
		Errors:        make(map[string]string, len(state.Errors)),
		VisibleErrors: make(map[string]string),
		Touched:       make(map[string]bool, len(state.Touched)),
		Dirty:         form.IsDirty(),
		IsValid:       form.IsValid(),
		IsSubmitting:  state.Submitting,
		SubmitCount:   state.SubmitCount,
		HasResult:     session.LastResult != nil,
		UpdatedAt:     session.UpdatedAt,
	}
	for field, msg := range state.Errors {
		resp.Errors[string(field)] = msg
	}
	for field, msg := range form.VisibleErrors() {
		resp.VisibleErrors[string(field)] = msg
	}
	for field, touched := range state.Touched {
		if touched {
			resp.Touched[string(field)] = true
		}
	}
	return resp
}
