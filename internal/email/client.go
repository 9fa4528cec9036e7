// Package email delivers transactional emails through an external provider.
package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/richardliu001/newsletter-service/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_email_client.go -package=mocks

// ErrFailedToSendEmail is wrapped by every delivery error.
var ErrFailedToSendEmail = errors.New("failed to send email")

// SendError is a failed delivery. It matches ErrFailedToSendEmail and unwraps
// to the provider or transport error.
type SendError struct {
	Provider string
	Cause    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFailedToSendEmail, e.Provider, e.Cause)
}

func (e *SendError) Is(target error) bool { return target == ErrFailedToSendEmail }

func (e *SendError) Unwrap() error { return e.Cause }

// Client sends one email with an HTML and a plain text part.
type Client interface {
	Send(ctx context.Context, recipient domain.SubscriberEmail, subject, htmlBody, textBody string) error
}
