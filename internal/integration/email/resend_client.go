// Package email delivers budget alert emails via Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

var (
	// ErrPermanentFailure marks a send that will not succeed on retry.
	ErrPermanentFailure = errors.New("permanent email failure")
	// ErrTemporaryFailure marks a send that may succeed on retry.
	ErrTemporaryFailure = errors.New("temporary email failure")
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client. baseURL overrides the Resend API
// endpoint and may be empty.
func NewResendClient(apiKey, baseURL, fromName, fromEmail string) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = u
	}
	return &ResendClient{
		client:    client,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, email adapter.OutboundEmail) (*adapter.EmailReceipt, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Tags:    resendTags(email.Tags),
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, fmt.Errorf("%w: %w", ErrPermanentFailure, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
	}

	return &adapter.EmailReceipt{MessageID: resp.Id}, nil
}

// resendTags converts tags to Resend's list form, ordered by name.
func resendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]resend.Tag, 0, len(names))
	for _, name := range names {
		out = append(out, resend.Tag{Name: name, Value: tags[name]})
	}
	return out
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// MockEmailSender records emails instead of sending them.
type MockEmailSender struct {
	mu        sync.Mutex
	sent      []adapter.OutboundEmail
	FailError error
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send records email, or fails with FailError when it is set.
func (m *MockEmailSender) Send(_ context.Context, email adapter.OutboundEmail) (*adapter.EmailReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailError != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemporaryFailure, m.FailError)
	}

	m.sent = append(m.sent, email)
	return &adapter.EmailReceipt{MessageID: fmt.Sprintf("mock-%d", len(m.sent))}, nil
}

// Sent returns a copy of the emails recorded so far.
func (m *MockEmailSender) Sent() []adapter.OutboundEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]adapter.OutboundEmail(nil), m.sent...)
}

// Reset clears recorded emails and the failure.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.FailError = nil
}
