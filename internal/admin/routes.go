package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the privacy page, login flow and the protected dashboard.
func (a *Admin) RegisterRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			c.SetSameSite(http.SameSiteStrictMode)
			c.SetCookie(tokenCookie, a.token, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
			log.Printf("Admin login successful from %s", a.HashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		log.Printf("Failed admin login attempt from %s", a.HashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(tokenCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", a.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.AuthMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.db.Stats(c.Request.Context(), a.now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.db.Stats(c.Request.Context(), a.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/submissions", func(c *gin.Context) {
		subs, err := a.db.RecentSubmissions(c.Request.Context(), 200)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load submissions",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-submissions.html", gin.H{
			"title":       "Submissions",
			"submissions": subs,
		})
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		a.Cleanup(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup finished"})
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.db.Stats(c.Request.Context(), a.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", a.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
