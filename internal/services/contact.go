package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gansputra.dev/internal/models"
)

var (
	// ErrInvalidForm is returned when a required field is missing or malformed
	ErrInvalidForm = errors.New("invalid contact form")
	// ErrSubmitInFlight is returned while a previous submit is outstanding
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// FormStatus is the visible state of the contact form
type FormStatus string

const (
	FormIdle       FormStatus = "idle"
	FormSubmitting FormStatus = "submitting"
	FormSent       FormStatus = "sent"
	FormFallback   FormStatus = "fallback"
)

// Sender delivers a contact form to the primary channel
type Sender interface {
	Send(ctx context.Context, form models.ContactForm) error
}

// Recorder stores contact attempts
type Recorder interface {
	Record(ctx context.Context, s models.Submission) error
}

// LinkOpener opens the fallback deep link in a new browsing context
type LinkOpener interface {
	Open(link string)
}

// OpenerFunc adapts a function to LinkOpener
type OpenerFunc func(link string)

// Open implements LinkOpener
func (f OpenerFunc) Open(link string) { f(link) }

// FormView is the client view of the contact form
type FormView struct {
	Status       FormStatus         `json:"status"`
	Fields       models.ContactForm `json:"fields"`
	FallbackURL  string             `json:"fallback_url,omitempty"`
	ConfirmUntil *time.Time         `json:"confirm_until,omitempty"`
}

// ContactForm is one visitor's form. The confirmation state reverts to idle
// on its own after the confirm duration.
type ContactForm struct {
	mu       sync.Mutex
	status   FormStatus
	fields   models.ContactForm
	fallback string
	until    time.Time
	timer    *time.Timer
}

// NewContactForm creates an empty idle form
func NewContactForm() *ContactForm {
	return &ContactForm{status: FormIdle}
}

// View snapshots the form
func (f *ContactForm) View() FormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := FormView{Status: f.status, Fields: f.fields, FallbackURL: f.fallback}
	if f.status == FormSent {
		until := f.until
		v.ConfirmUntil = &until
	}
	return v
}

// Reset returns to an empty idle form and cancels any pending revert
func (f *ContactForm) Reset() FormView {
	f.mu.Lock()
	f.stopTimerLocked()
	f.status = FormIdle
	f.fields = models.ContactForm{}
	f.fallback = ""
	f.mu.Unlock()
	return f.View()
}

// Close cancels the pending revert timer
func (f *ContactForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimerLocked()
}

func (f *ContactForm) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// begin moves to submitting, rejecting a concurrent submit
func (f *ContactForm) begin(input models.ContactForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == FormSubmitting {
		return ErrSubmitInFlight
	}
	f.stopTimerLocked()
	f.status = FormSubmitting
	f.fields = input
	f.fallback = ""
	return nil
}

func (f *ContactForm) sent(confirm time.Duration, now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = FormSent
	f.fields = models.ContactForm{}
	f.until = now.Add(confirm)

	var t *time.Timer
	t = time.AfterFunc(confirm, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.timer == t {
			f.status = FormIdle
			f.timer = nil
		}
	})
	f.timer = t
}

func (f *ContactForm) failed(link string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = FormFallback
	f.fallback = link
}

// ContactService submits contact forms with a chat deep-link fallback
type ContactService struct {
	sender       Sender
	recorder     Recorder
	recipient    string
	timeout      time.Duration
	confirm      time.Duration
	autoFallback bool
	logger       *zap.Logger
	now          func() time.Time
}

// ContactOptions configures a ContactService
type ContactOptions struct {
	Recipient       string
	Timeout         time.Duration
	ConfirmDuration time.Duration
	AutoFallback    bool
}

// NewContactService creates a new ContactService. recorder may be nil.
func NewContactService(sender Sender, recorder Recorder, opts ContactOptions, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		sender:       sender,
		recorder:     recorder,
		recipient:    opts.Recipient,
		timeout:      opts.Timeout,
		confirm:      opts.ConfirmDuration,
		autoFallback: opts.AutoFallback,
		logger:       logger,
		now:          time.Now,
	}
}

// Validate trims the fields and checks they are all present
func Validate(input models.ContactForm) (models.ContactForm, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Message = strings.TrimSpace(input.Message)

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return input, fmt.Errorf("%w: missing %s", ErrInvalidForm, strings.Join(missing, ", "))
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return input, fmt.Errorf("%w: email %q", ErrInvalidForm, input.Email)
	}
	return input, nil
}

// FallbackLink builds the pre-filled chat deep link for a form
func (s *ContactService) FallbackLink(form models.ContactForm) string {
	text := fmt.Sprintf("Hi, my name is %s (%s).\n\nMessage: %s", form.Name, form.Email, form.Message)
	return "https://wa.me/" + url.PathEscape(s.recipient) + "?" + url.Values{"text": {text}}.Encode()
}

// Submit delivers the form. On success the form shows a confirmation for the
// configured duration. On any failure the form offers the chat deep link;
// with auto fallback enabled the link is also passed to opener.
func (s *ContactService) Submit(ctx context.Context, form *ContactForm, input models.ContactForm, opener LinkOpener) (FormView, error) {
	input, err := Validate(input)
	if err != nil {
		return form.View(), err
	}
	if err := form.begin(input); err != nil {
		return form.View(), err
	}

	sendCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	sub := models.Submission{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Subject:   Subject(input.Name),
		CreatedAt: s.now().UTC(),
	}

	if sendErr := s.sender.Send(sendCtx, input); sendErr != nil {
		link := s.FallbackLink(input)
		sub.Status = models.StatusFallback
		sub.FallbackURL = link
		sub.Error = sendErr.Error()
		s.logger.Warn("contact relay failed, offering fallback",
			zap.String("submission", sub.ID),
			zap.Error(sendErr))

		form.failed(link)
		if s.autoFallback && opener != nil {
			opener.Open(link)
		}
	} else {
		sub.Status = models.StatusSent
		s.logger.Info("contact message sent", zap.String("submission", sub.ID))
		form.sent(s.confirm, s.now())
	}

	s.record(context.WithoutCancel(ctx), sub)
	return form.View(), nil
}

func (s *ContactService) record(ctx context.Context, sub models.Submission) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, sub); err != nil {
		s.logger.Error("failed to record submission", zap.String("submission", sub.ID), zap.Error(err))
	}
}
