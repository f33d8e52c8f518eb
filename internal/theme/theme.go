// Package theme holds the page colour scheme as an immutable value.
//
// The page shell resolves the theme once per request and passes it down to every
// view; the only way to change it is Toggle, called from the shell's theme endpoint.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// Theme is the page colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default applies when neither a stored preference nor a system hint is usable.
	Default = Dark

	// CookieName is the single persisted preference key.
	CookieName = "theme"

	// HintHeader carries the browser's prefers-color-scheme client hint.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
)

// Parse returns the theme named by s, ignoring case and surrounding space.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Resolve picks the stored preference if valid, then the system hint, then Default.
func Resolve(stored, systemHint string) Theme {
	if t, ok := Parse(stored); ok {
		return t
	}
	if t, ok := Parse(strings.Trim(systemHint, `"`)); ok {
		return t
	}
	return Default
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}

// IsDark reports whether the dark class should be set on the document.
func (t Theme) IsDark() bool {
	return t == Dark
}

// FromRequest resolves the theme for an incoming request.
func FromRequest(r *http.Request) Theme {
	var stored string
	if c, err := r.Cookie(CookieName); err == nil {
		stored = c.Value
	}
	return Resolve(stored, r.Header.Get(HintHeader))
}

// Cookie builds the cookie that persists t for a year.
func Cookie(t Theme) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    t.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	}
}
