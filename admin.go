// admin.go - privacy-conscious visitor stats and contact inbox
package main

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahzammaqsood/portfolio/internal/tracking"
)

const adminCookie = "admin_token"

// adminAuth holds the per-process session token and login credentials.
type adminAuth struct {
	token    string
	username string
	password string
}

func newAdminAuth(cfg AdminConfig, log *zap.Logger) (*adminAuth, error) {
	token, err := tracking.RandomToken()
	if err != nil {
		return nil, err
	}
	if cfg.UsesDefaults() {
		log.Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	log.Info("admin access available", zap.String("path", "/admin/login"))
	return &adminAuth{token: token, username: cfg.Username, password: cfg.Password}, nil
}

func (a *adminAuth) valid(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{"/static/", "/admin/", "/api/", "/favicon", "/privacy", "/healthz"}

// Privacy-conscious visitor tracking middleware. Only page loads count;
// fragment and form requests are skipped.
func (s *server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || isHTMX(c) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		s.tracker.Visit(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

// Setup all admin routes
func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": retentionText(s.cfg.VisitorRetention),
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.admin.valid(c.PostForm("username"), c.PostForm("password")) {
			s.log.Warn("failed admin login", zap.String("client", s.tracker.HashIP(c.ClientIP())))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", false, true)
		s.log.Info("admin login", zap.String("client", s.tracker.HashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.admin.middleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := s.store.Stats(ctx, s.now())
		if err != nil {
			s.log.Error("loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		messages, err := s.store.RecentMessages(ctx, 10)
		if err != nil {
			s.log.Error("loading contact messages", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"messages": messages,
			"titles":   s.projectTitles(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/messages", func(c *gin.Context) {
		messages, err := s.store.RecentMessages(c.Request.Context(), 200)
		if err != nil {
			s.log.Error("loading contact messages", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{
			"messages": messages,
		})
	})

	// Drop visitor rows past the retention window now instead of waiting
	// for the next scheduled run.
	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := tracking.Cleanup(c.Request.Context(), s.store, s.log, s.cfg.VisitorRetention, s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.tracker.HashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})
}

// projectTitles maps project ids to titles for the dashboard.
func (s *server) projectTitles() map[string]string {
	titles := make(map[string]string, s.catalog.Len())
	for _, rec := range s.catalog.All() {
		titles[rec.ID] = rec.Title
	}
	return titles
}

func retentionText(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days <= 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
