package theme

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		hint   string
		want   Theme
	}{
		{"stored light wins over hint", "light", "dark", Light},
		{"stored dark", "dark", "", Dark},
		{"stored is case insensitive", " LIGHT ", "", Light},
		{"invalid stored falls back to hint", "purple", "light", Light},
		{"quoted hint", "", `"light"`, Light},
		{"nothing usable uses default", "", "no-preference", Default},
		{"empty everything", "", "", Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.stored, tt.hint))
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Dark, Dark.Toggle().Toggle())
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(Cookie(Light))
	req.Header.Set(HintHeader, "dark")
	assert.Equal(t, Light, FromRequest(req))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HintHeader, "light")
	assert.Equal(t, Light, FromRequest(req))

	req = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, Dark, FromRequest(req))
}

func TestCookie(t *testing.T) {
	c := Cookie(Dark)
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Positive(t, c.MaxAge)
}
