package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RELAY_KIND", "")
	t.Setenv("CAROUSEL_PAGE_SIZE", "")
	t.Setenv("SPLASH_DURATION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, RelayLog, cfg.Relay.Kind)
	assert.Equal(t, 3, cfg.Page.CarouselPageSize)
	assert.Equal(t, 10*time.Second, cfg.Page.CarouselInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.Page.SplashDuration)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SPLASH_DURATION", "1200")
	t.Setenv("CAROUSEL_INTERVAL", "5s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 1200*time.Millisecond, cfg.Page.SplashDuration)
	assert.Equal(t, 5*time.Second, cfg.Page.CarouselInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CAROUSEL_PAGE_SIZE", "three")
	t.Setenv("SESSION_TTL", "forever")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Page.CarouselPageSize)
	assert.Equal(t, 24*time.Hour, cfg.Storage.SessionTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Page.CarouselPageSize = 0 },
			wantErr: "CAROUSEL_PAGE_SIZE",
		},
		{
			name:    "emailjs without keys",
			mutate:  func(c *Config) { c.Relay.Kind = RelayEmailJS },
			wantErr: "EMAILJS_SERVICE_ID",
		},
		{
			name:    "smtp without credentials",
			mutate:  func(c *Config) { c.Relay.Kind = RelaySMTP },
			wantErr: "SMTP_USER",
		},
		{
			name:    "unknown relay",
			mutate:  func(c *Config) { c.Relay.Kind = "pigeon" },
			wantErr: "unknown RELAY_KIND",
		},
		{
			name: "shared template",
			mutate: func(c *Config) {
				c.Relay.AutoReplyTemplate = c.Relay.InboxTemplate
			},
			wantErr: "must differ",
		},
		{
			name:   "log relay",
			mutate: func(c *Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Port: "8080"},
				Page:   PageConfig{CarouselPageSize: 3, CarouselInterval: time.Second},
				Relay: RelayConfig{
					Kind:              RelayLog,
					OwnerEmail:        "me@example.com",
					InboxTemplate:     "template_inbox",
					AutoReplyTemplate: "template_autoreply",
				},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
