package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultEmailJSEndpoint is the hosted send API.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSRelay sends templated mail through the EmailJS REST API.
type EmailJSRelay struct {
	Endpoint  string
	ServiceID string
	PublicKey string
	Client    *http.Client
}

func NewEmailJSRelay(endpoint, serviceID, publicKey string, timeout time.Duration) *EmailJSRelay {
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}
	return &EmailJSRelay{
		Endpoint:  endpoint,
		ServiceID: serviceID,
		PublicKey: publicKey,
		Client:    &http.Client{Timeout: timeout},
	}
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Payload `json:"template_params"`
}

func (r *EmailJSRelay) Send(ctx context.Context, templateID string, p Payload) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      r.ServiceID,
		TemplateID:     templateID,
		UserID:         r.PublicKey,
		TemplateParams: p,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode relay request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build relay request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return errors.Wrap(err, "relay request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &RelayError{Status: resp.StatusCode, Text: strings.TrimSpace(string(text))}
}
