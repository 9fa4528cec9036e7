package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/richardliu001/newsletter-service/internal/domain"
)

// PostmarkClient talks to the Postmark REST API.
type PostmarkClient struct {
	http               *http.Client
	baseURL            string
	sender             domain.SubscriberEmail
	authorizationToken string
}

type postmarkRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// NewPostmarkClient builds a client; timeout bounds every request.
func NewPostmarkClient(baseURL string, sender domain.SubscriberEmail, authorizationToken string, timeout time.Duration) *PostmarkClient {
	return &PostmarkClient{
		http:               &http.Client{Timeout: timeout},
		baseURL:            strings.TrimRight(baseURL, "/"),
		sender:             sender,
		authorizationToken: authorizationToken,
	}
}

// Send posts the message to {baseURL}/email.
func (c *PostmarkClient) Send(ctx context.Context, recipient domain.SubscriberEmail, subject, htmlBody, textBody string) error {
	body, err := json.Marshal(postmarkRequest{
		From:     c.sender.String(),
		To:       recipient.String(),
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: textBody,
	})
	if err != nil {
		return &SendError{Provider: "postmark", Cause: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(body))
	if err != nil {
		return &SendError{Provider: "postmark", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.authorizationToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return &SendError{Provider: "postmark", Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SendError{Provider: "postmark", Cause: fmt.Errorf("responded %d", resp.StatusCode)}
	}
	return nil
}
