// Package notify builds and sends the subscription confirmation email.
package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/osteele/liquid"
	"github.com/richardliu001/newsletter-service/internal/domain"
	"github.com/richardliu001/newsletter-service/internal/email"
)

const Subject = "Welcome!"

const (
	textTemplate = "Welcome to our newsletter!\nVisit {{ confirmation_link }} to confirm your subscription."
	htmlTemplate = `Welcome to our newsletter!<br />Click <a href="{{ confirmation_link }}">here</a> to confirm your subscription.`
)

// Notifier sends confirmation links to new subscribers.
type Notifier struct {
	client  email.Client
	baseURL string
	text    *liquid.Template
	html    *liquid.Template
}

// NewNotifier parses the body templates once.
func NewNotifier(client email.Client, baseURL string) (*Notifier, error) {
	engine := liquid.NewEngine()
	text, err := engine.ParseString(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	html, err := engine.ParseString(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	return &Notifier{client: client, baseURL: strings.TrimRight(baseURL, "/"), text: text, html: html}, nil
}

// ConfirmationLink is the URL the confirmation endpoint expects.
func ConfirmationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", baseURL, url.QueryEscape(token))
}

// SendConfirmation emails the confirmation link for token to recipient.
func (n *Notifier) SendConfirmation(ctx context.Context, recipient domain.SubscriberEmail, token string) error {
	bindings := liquid.Bindings{"confirmation_link": ConfirmationLink(n.baseURL, token)}

	textBody, err := n.text.RenderString(bindings)
	if err != nil {
		return fmt.Errorf("render text body: %w", err)
	}
	htmlBody, err := n.html.RenderString(bindings)
	if err != nil {
		return fmt.Errorf("render html body: %w", err)
	}
	return n.client.Send(ctx, recipient, Subject, htmlBody, textBody)
}
