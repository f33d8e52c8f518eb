// Package admin is the owner's dashboard: privacy-conscious visitor tracking and
// the contact submission log.
package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/William-WYL/portfolio/internal/store"
)

const (
	tokenCookie = "admin_token"

	// Retention is how long page views are kept.
	Retention = 365 * 24 * time.Hour
)

// Admin holds the dashboard credentials, the session token and the IP salt.
type Admin struct {
	db       *store.DB
	username string
	password string
	token    string
	salt     string
	now      func() time.Time

	wg sync.WaitGroup
}

// New prepares the admin system. Missing credentials fall back to development
// defaults only in gin debug mode; otherwise logins are refused.
func New(db *store.DB, username, password string) *Admin {
	if gin.Mode() == gin.DebugMode {
		if username == "" {
			username = "admin"
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
		if password == "" {
			password = "admin123"
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}

	a := &Admin{
		db:       db,
		username: username,
		password: password,
		token:    generateToken(),
		salt:     generateToken(),
		now:      time.Now,
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	return a
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// HashIP hashes an address with the process salt. The same IP hashes the same way
// until restart.
func (a *Admin) HashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *Admin) checkCredentials(username, password string) bool {
	if a.username == "" || a.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// AuthMiddleware redirects to the login page without a valid token cookie.
func (a *Admin) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(tokenCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

var untrackedPrefixes = []string{"/static/", "/admin/", "/favicon", "/privacy", "/healthz", "/api/"}

// TrackingMiddleware records page views with hashed IPs in the background.
func (a *Admin) TrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  a.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: a.now(),
		}
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := a.db.RecordVisit(context.Background(), visit); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// Wait blocks until background writes have finished.
func (a *Admin) Wait() {
	a.wg.Wait()
}

// Cleanup drops page views older than Retention.
func (a *Admin) Cleanup(ctx context.Context) {
	n, err := a.db.PruneVisits(ctx, a.now().Add(-Retention))
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", n)
	}
}

// RunCleanup prunes once now and then every interval until ctx ends.
func (a *Admin) RunCleanup(ctx context.Context, interval time.Duration) {
	a.Cleanup(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Cleanup(ctx)
		}
	}
}
