package adapter

import "context"

// OutboundEmail is a rendered message addressed to one account holder.
type OutboundEmail struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
	// Tags label the message at the provider, e.g. {"kind": "budget_exceeded"}.
	Tags map[string]string
}

// EmailReceipt identifies an accepted message at the provider.
type EmailReceipt struct {
	MessageID string
}

// EmailSender hands rendered emails to an external provider.
type EmailSender interface {
	Send(ctx context.Context, email OutboundEmail) (*EmailReceipt, error)
}
