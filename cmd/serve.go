package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/William-WYL/portfolio/internal/admin"
	"github.com/William-WYL/portfolio/internal/config"
	"github.com/William-WYL/portfolio/internal/contact"
	"github.com/William-WYL/portfolio/internal/content"
	"github.com/William-WYL/portfolio/internal/session"
	"github.com/William-WYL/portfolio/internal/store"
	"github.com/William-WYL/portfolio/internal/web"
)

const (
	cleanupInterval = 24 * time.Hour
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

var (
	servePort    string
	serveContent string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	Long: `Starts the HTTP server. Settings come from the environment (and a .env file
when present): PORT, CONTENT_FILE, DB_PATH, REDIS_URL, RELAY_KIND and friends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
		if servePort != "" {
			cfg.Server.Port = servePort
		}
		if serveContent != "" {
			cfg.Page.ContentFile = serveContent
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVarP(&serveContent, "content", "c", "", "YAML content file (overrides CONTENT_FILE)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.Server.Mode)

	catalog, err := loadCatalog(cfg.Page.ContentFile)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer db.Close()

	sessions, closeSessions, err := openSessions(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeSessions()

	adm := admin.New(db, cfg.Admin.Username, cfg.Admin.Password)
	go adm.RunCleanup(ctx, cleanupInterval)

	srv := web.New(web.Config{
		Port:             cfg.Server.Port,
		SplashDuration:   cfg.Page.SplashDuration,
		CarouselInterval: cfg.Page.CarouselInterval,
		CarouselPageSize: cfg.Page.CarouselPageSize,
		SessionTTL:       cfg.Storage.SessionTTL,
		CORSOrigins:      cfg.Server.CORSOrigins,
		SecureCookies:    cfg.Server.Mode == gin.ReleaseMode,
	}, web.Deps{
		Catalog:  catalog,
		Sessions: sessions,
		Relay:    newRelay(cfg.Relay),
		Contact: contact.Options{
			OwnerEmail:        cfg.Relay.OwnerEmail,
			InboxTemplate:     cfg.Relay.InboxTemplate,
			AutoReplyTemplate: cfg.Relay.AutoReplyTemplate,
		},
		DB:    db,
		Admin: adm,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	adm.Wait()

	log.Println("Server exited")
	return nil
}

// loadCatalog reads the content file, or returns the built-in copy when path is empty.
func loadCatalog(path string) (content.Catalog, error) {
	cat, err := content.Load(path)
	if err != nil {
		return content.Catalog{}, err
	}
	if path != "" {
		log.Printf("Loaded content from %s", path)
	}
	return cat, nil
}

// openSessions uses Redis when REDIS_URL is set and an in-process store otherwise.
func openSessions(ctx context.Context, cfg config.StorageConfig) (session.Store, func(), error) {
	if cfg.RedisURL != "" {
		client, err := session.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "connecting to redis")
		}
		log.Println("Sessions stored in Redis")
		return session.NewRedisStore(client, cfg.SessionTTL), func() { client.Close() }, nil
	}

	mem := session.NewMemoryStore(cfg.SessionTTL)
	go sweepSessions(ctx, mem, sweepInterval)
	log.Println("Sessions stored in memory")
	return mem, func() {}, nil
}

func sweepSessions(ctx context.Context, mem *session.MemoryStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := mem.Sweep(); n > 0 {
				log.Printf("Expired %d sessions", n)
			}
		}
	}
}

func newRelay(cfg config.RelayConfig) contact.Relay {
	switch cfg.Kind {
	case config.RelayEmailJS:
		log.Println("Contact relay: EmailJS")
		return contact.NewEmailJSRelay(cfg.Endpoint, cfg.ServiceID, cfg.PublicKey, cfg.Timeout)
	case config.RelaySMTP:
		log.Printf("Contact relay: SMTP via %s:%s", cfg.SMTPHost, cfg.SMTPPort)
		return contact.NewSMTPRelay(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
			cfg.InboxTemplate, cfg.AutoReplyTemplate)
	default:
		log.Println("Contact relay: log only, messages are not delivered")
		return contact.LogRelay{}
	}
}
