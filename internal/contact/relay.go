package contact

import (
	"context"
	"fmt"
	"log"
)

// Payload is the template data of one outbound email.
type Payload struct {
	ToEmail   string `json:"to_email"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ReplyTo   string `json:"reply_to"`
}

// Relay delivers one templated email through an external service.
type Relay interface {
	Send(ctx context.Context, templateID string, p Payload) error
}

// RelayError is a rejection reported by the relay. Text is the remote error body.
type RelayError struct {
	Status int
	Text   string
}

func (e *RelayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("relay rejected message (%d): %s", e.Status, e.Text)
	}
	return "relay rejected message: " + e.Text
}

// RelayFunc adapts a function to Relay.
type RelayFunc func(ctx context.Context, templateID string, p Payload) error

func (f RelayFunc) Send(ctx context.Context, templateID string, p Payload) error {
	return f(ctx, templateID, p)
}

// LogRelay only logs the messages. Used in development when no relay is configured.
type LogRelay struct{}

func (LogRelay) Send(_ context.Context, templateID string, p Payload) error {
	log.Printf("Relay (log only) template=%s to=%s reply_to=%s subject=%q", templateID, p.ToEmail, p.ReplyTo, p.Subject)
	return nil
}
