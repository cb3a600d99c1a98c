package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"siteprisme.fr/internal/inbox"
	"siteprisme.fr/internal/log"
	"siteprisme.fr/internal/metrics"
	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/relay"
)

// Submission sources, as seen in logs, metrics and the inbox.
const (
	SourceForm      = "form"
	SourceAPI       = "api"
	SourceSendEmail = "send-email"
)

var (
	// ErrDelivery wraps every channel failure returned by Submit and SendEmail.
	ErrDelivery = errors.New("delivery failed")
	// ErrEmailDisabled is returned by SendEmail when no email channel is configured.
	ErrEmailDisabled = errors.New("email channel not configured")
)

// Recorder stores submission outcomes. *inbox.Store implements it.
type Recorder interface {
	Record(ctx context.Context, e inbox.Entry) error
}

// Meta describes where a submission came from.
type Meta struct {
	Source     string
	RemoteAddr string
	UserAgent  string
}

// Receipt is returned for a delivered submission.
type Receipt struct {
	ID        string
	Reference string // provider reference, e.g. the email message id
}

// ContactService validates contact requests and hands them to the relays.
// Every call is a single attempt: nothing is retried or queued.
type ContactService struct {
	channels []relay.Channel
	email    relay.Channel // used by SendEmail, may be outside channels
	recorder Recorder
	newID    func() string
	now      func() time.Time
}

// NewContactService creates the service. recorder may be nil.
func NewContactService(channels []relay.Channel, recorder Recorder) *ContactService {
	return &ContactService{
		channels: channels,
		recorder: recorder,
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
}

// WithEmailRelay sets the channel SendEmail delivers through. Without it
// SendEmail falls back to the email channel among the form channels.
func (s *ContactService) WithEmailRelay(ch relay.Channel) *ContactService {
	s.email = ch
	return s
}

// Channels returns the names of the configured channels.
func (s *ContactService) Channels() []string {
	names := make([]string, 0, len(s.channels))
	for _, ch := range s.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Submit validates req and delivers it through every configured channel.
// It returns a *ValidationError when req is rejected, or an error wrapping
// ErrDelivery when any channel fails.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest, meta Meta) (Receipt, error) {
	if fields := ValidateContact(req); len(fields) > 0 {
		metrics.RecordSubmission(meta.Source, metrics.OutcomeInvalid)
		return Receipt{}, &ValidationError{Fields: fields}
	}
	return s.deliver(ctx, req, meta, s.channels)
}

// SendEmail delivers req through the email channel only. Callers check field
// presence beforehand; no format validation happens here. It returns
// ErrEmailDisabled when no email channel is configured.
func (s *ContactService) SendEmail(ctx context.Context, req models.ContactRequest, meta Meta) (Receipt, error) {
	if s.email != nil {
		return s.deliver(ctx, req, meta, []relay.Channel{s.email})
	}
	for _, ch := range s.channels {
		if ch.Name() == relay.ChannelEmail {
			return s.deliver(ctx, req, meta, []relay.Channel{ch})
		}
	}
	metrics.RecordSubmission(meta.Source, metrics.OutcomeRejected)
	return Receipt{}, ErrEmailDisabled
}

func (s *ContactService) deliver(ctx context.Context, req models.ContactRequest, meta Meta, channels []relay.Channel) (Receipt, error) {
	sub := models.Submission{
		ID:         s.newID(),
		Request:    req,
		RemoteAddr: meta.RemoteAddr,
		UserAgent:  meta.UserAgent,
	}
	logger := log.WithComponentFromContext(ctx, "contact").With().
		Str(log.FieldSubmissionID, sub.ID).
		Str("source", meta.Source).
		Logger()

	refs := make([]string, len(channels))
	errs := make([]error, len(channels))

	var g errgroup.Group
	for i, ch := range channels {
		g.Go(func() error {
			start := time.Now()
			ref, err := ch.Deliver(ctx, sub)
			metrics.ObserveRelay(ch.Name(), err == nil, time.Since(start).Seconds())
			if err != nil {
				logger.Error().Err(err).
					Str(log.FieldEvent, "relay.failed").
					Str(log.FieldChannel, ch.Name()).
					Msg("contact delivery failed")
				errs[i] = err
				return nil
			}
			refs[i] = ref
			return nil
		})
	}
	_ = g.Wait()

	deliveryErr := errors.Join(errs...)
	receipt := Receipt{ID: sub.ID, Reference: firstNonEmpty(refs)}
	s.record(ctx, logger, sub, meta, channels, receipt.Reference, deliveryErr)

	if deliveryErr != nil {
		metrics.RecordSubmission(meta.Source, metrics.OutcomeFailed)
		return Receipt{ID: sub.ID}, fmt.Errorf("%w: %w", ErrDelivery, deliveryErr)
	}

	metrics.RecordSubmission(meta.Source, metrics.OutcomeSent)
	logger.Info().
		Str(log.FieldEvent, "contact.submitted").
		Str("type_projet", req.TypeProjet).
		Strs("channels", names(channels)).
		Msg("contact request delivered")
	return receipt, nil
}

// record writes the outcome to the inbox. Failures are logged and counted but
// never change what the visitor sees.
func (s *ContactService) record(ctx context.Context, logger zerolog.Logger, sub models.Submission, meta Meta, channels []relay.Channel, ref string, deliveryErr error) {
	if s.recorder == nil {
		return
	}

	entry := inbox.Entry{
		ID:         sub.ID,
		ReceivedAt: s.now(),
		Source:     meta.Source,
		Request:    sub.Request,
		RemoteAddr: sub.RemoteAddr,
		Status:     inbox.StatusSent,
		Channels:   names(channels),
		Reference:  ref,
	}
	if deliveryErr != nil {
		entry.Status = inbox.StatusFailed
		entry.Error = deliveryErr.Error()
	}

	// the visitor may have gone away; the record should still be written
	if err := s.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		metrics.IncInboxError()
		logger.Warn().Err(err).Str(log.FieldEvent, "inbox.write_failed").Msg("could not record submission")
	}
}

func names(channels []relay.Channel) []string {
	out := make([]string, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ch.Name())
	}
	return out
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
