package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Relay kinds accepted in RELAY_KIND.
const (
	RelayEmailJS = "emailjs"
	RelaySMTP    = "smtp"
	RelayLog     = "log"
)

type Config struct {
	Server  ServerConfig
	Page    PageConfig
	Storage StorageConfig
	Relay   RelayConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port        string
	Mode        string
	CORSOrigins []string
}

type PageConfig struct {
	ContentFile      string
	SplashDuration   time.Duration
	CarouselInterval time.Duration
	CarouselPageSize int
}

type StorageConfig struct {
	DBPath     string
	RedisURL   string
	SessionTTL time.Duration
}

// RelayConfig describes the outbound email relay used by the contact form.
type RelayConfig struct {
	Kind              string
	OwnerEmail        string
	ServiceID         string
	PublicKey         string
	InboxTemplate     string
	AutoReplyTemplate string
	Endpoint          string
	Timeout           time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

type AdminConfig struct {
	Username string
	Password string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Mode:        getEnv("GIN_MODE", "debug"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Page: PageConfig{
			ContentFile:      getEnv("CONTENT_FILE", ""),
			SplashDuration:   getEnvAsDuration("SPLASH_DURATION", 2500*time.Millisecond),
			CarouselInterval: getEnvAsDuration("CAROUSEL_INTERVAL", 10*time.Second),
			CarouselPageSize: getEnvAsInt("CAROUSEL_PAGE_SIZE", 3),
		},
		Storage: StorageConfig{
			DBPath:     getEnv("DB_PATH", "./data/portfolio.db"),
			RedisURL:   getEnv("REDIS_URL", ""),
			SessionTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Relay: RelayConfig{
			Kind:              getEnv("RELAY_KIND", RelayLog),
			OwnerEmail:        getEnv("OWNER_EMAIL", "weiwang.william.ca@gmail.com"),
			ServiceID:         getEnv("EMAILJS_SERVICE_ID", ""),
			PublicKey:         getEnv("EMAILJS_PUBLIC_KEY", ""),
			InboxTemplate:     getEnv("EMAILJS_INBOX_TEMPLATE", "template_inbox"),
			AutoReplyTemplate: getEnv("EMAILJS_AUTOREPLY_TEMPLATE", "template_autoreply"),
			Endpoint:          getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			Timeout:           getEnvAsDuration("RELAY_TIMEOUT", 15*time.Second),
			SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:          getEnv("SMTP_PORT", "587"),
			SMTPUser:          getEnv("SMTP_USER", ""),
			SMTPPass:          getEnv("SMTP_PASS", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	if c.Page.CarouselPageSize < 1 {
		return errors.Errorf("CAROUSEL_PAGE_SIZE must be positive, got %d", c.Page.CarouselPageSize)
	}

	if c.Page.CarouselInterval <= 0 {
		return errors.New("CAROUSEL_INTERVAL must be positive")
	}

	switch c.Relay.Kind {
	case RelayEmailJS:
		if c.Relay.ServiceID == "" || c.Relay.PublicKey == "" {
			return errors.New("EMAILJS_SERVICE_ID and EMAILJS_PUBLIC_KEY are required for the emailjs relay")
		}
	case RelaySMTP:
		if c.Relay.SMTPUser == "" || c.Relay.SMTPPass == "" {
			return errors.New("SMTP_USER and SMTP_PASS are required for the smtp relay")
		}
	case RelayLog:
	default:
		return errors.Errorf("unknown RELAY_KIND %q", c.Relay.Kind)
	}

	if c.Relay.OwnerEmail == "" {
		return errors.New("OWNER_EMAIL is required")
	}

	if c.Relay.InboxTemplate == c.Relay.AutoReplyTemplate {
		return errors.New("EMAILJS_INBOX_TEMPLATE and EMAILJS_AUTOREPLY_TEMPLATE must differ")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration accepts Go duration strings ("10s") or a bare number of milliseconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
