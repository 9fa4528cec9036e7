package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/richardliu001/newsletter-service/internal/domain"
	"github.com/richardliu001/newsletter-service/internal/events"
	"github.com/richardliu001/newsletter-service/internal/logger"
	"github.com/richardliu001/newsletter-service/internal/model"
	"github.com/richardliu001/newsletter-service/internal/repo"
	"github.com/richardliu001/newsletter-service/internal/token"
	"go.uber.org/zap"
)

// ConfirmationSender delivers the confirmation link for a stored token.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, recipient domain.SubscriberEmail, token string) error
}

// TokenGenerator issues subscription tokens.
type TokenGenerator interface {
	Generate() string
}

// SubscriptionService runs the registration pipeline.
type SubscriptionService struct {
	repo     repo.RepositoryInterface
	notifier ConfirmationSender
	tokens   TokenGenerator
	events   events.Publisher
	log      *zap.SugaredLogger
}

// NewSubscriptionService returns SubscriptionService. A nil generator falls back to
// crypto/rand and a nil publisher disables events.
func NewSubscriptionService(r repo.RepositoryInterface, n ConfirmationSender, g TokenGenerator, p events.Publisher, logger *zap.SugaredLogger) *SubscriptionService {
	if g == nil {
		g = token.Default()
	}
	if p == nil {
		p = events.NopPublisher{}
	}
	return &SubscriptionService{repo: r, notifier: n, tokens: g, events: p, log: logger}
}

// Subscribe validates the form fields, stores a pending subscriber with a fresh
// token and emails the confirmation link. The email is only attempted after the
// transaction commits, and a delivery failure leaves the stored rows in place.
// Every failure is an *Error.
func (s *SubscriptionService) Subscribe(ctx context.Context, name, email string) error {
	ns, err := domain.NewSubscriberFromForm(name, email)
	if err != nil {
		return validationError(err)
	}
	s.log.Infow("adding a new subscriber", "subscriber_email", logger.RedactEmail(ns.Email.String()))

	id, tok, err := s.storeSubscription(ctx, ns)
	if err != nil {
		return err
	}

	if err := s.notifier.SendConfirmation(ctx, ns.Email, tok); err != nil {
		return unexpectedError("Failed to send a confirmation email.", err)
	}

	evt := model.SubscriptionEvent{
		EventType:    model.EventSubscriptionRequested,
		SubscriberID: id,
		Status:       model.StatusPendingConfirmation,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warnw("publish subscription event", "subscriber_id", id, "error", err)
	}
	return nil
}

func (s *SubscriptionService) storeSubscription(ctx context.Context, ns domain.NewSubscriber) (uuid.UUID, string, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return uuid.Nil, "", unexpectedError("Failed to acquire a Postgres connection from the pool", err)
	}
	committed := false
	defer func() {
		if !committed {
			s.repo.Rollback(tx)
		}
	}()

	id, err := s.repo.InsertSubscriber(ctx, tx, ns)
	if err != nil {
		return uuid.Nil, "", unexpectedError("Failed to insert new subscriber in the database.", err)
	}

	tok := s.tokens.Generate()
	if err := s.repo.StoreToken(ctx, tx, id, tok); err != nil {
		return uuid.Nil, "", unexpectedError("Failed to store the confirmation token for a new subscriber.", err)
	}

	if err := s.repo.Commit(tx); err != nil {
		return uuid.Nil, "", unexpectedError("Failed to commit SQL transaction to store a new subscriber.", err)
	}
	committed = true
	return id, tok, nil
}

// SubscriberIDFromToken resolves a confirmation token.
func (s *SubscriptionService) SubscriberIDFromToken(ctx context.Context, token string) (uuid.UUID, error) {
	return s.repo.SubscriberIDFromToken(ctx, token)
}

// Ready reports whether the store is reachable.
func (s *SubscriptionService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
