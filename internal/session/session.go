// Package session keeps per-visitor page state between requests: carousel page,
// revealed sections and the contact form.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/William-WYL/portfolio/internal/carousel"
	"github.com/William-WYL/portfolio/internal/contact"
)

// CookieName holds the session id.
const CookieName = "sid"

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// State is everything remembered about one visitor.
type State struct {
	ID        string           `json:"id"`
	Carousel  carousel.State   `json:"carousel"`
	Revealed  []string         `json:"revealed,omitempty"`
	Contact   contact.Snapshot `json:"contact"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// New starts a fresh state with a random id. The carousel interval starts at now.
func New(now time.Time) State {
	return State{
		ID:        uuid.NewString(),
		Carousel:  carousel.State{LastMoved: now},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store persists session state.
type Store interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, s State) error
	Delete(ctx context.Context, id string) error
}

// ValidID rejects cookie values that are not ids this package issued.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Cookie builds the session cookie for id.
func Cookie(id string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
