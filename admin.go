// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

type adminAuth struct {
	token       string
	hashingSalt string
	username    string
	password    string
}

// Initialize admin system with privacy considerations
func newAdminAuth(cfg Config) (*adminAuth, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}
	salt, err := randomToken() // Use for IP hashing
	if err != nil {
		return nil, fmt.Errorf("hashing salt: %w", err)
	}
	return &adminAuth{
		token:       token,
		hashingSalt: salt,
		username:    cfg.AdminUsername,
		password:    cfg.AdminPassword,
	}, nil
}

func randomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Hash IP address for privacy compliance (consistent per IP)
func (a *adminAuth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *adminAuth) enabled() bool {
	return a.username != "" && a.password != ""
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	if !a.enabled() {
		return false
	}
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

// visitorTracker records page views with hashed IPs in the background.
type visitorTracker struct {
	store   *Store
	auth    *adminAuth
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
	wg      sync.WaitGroup
}

var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin/", "/api/", "/favicon", "/privacy", "/resume/download/",
}

func (t *visitorTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track; only page loads are counted
		if c.GetHeader("DNT") == "1" || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		// Unknown paths and failed requests are not page views
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		hashed := t.auth.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		at := t.now()

		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			if err := t.store.RecordVisit(context.Background(), hashed, userAgent, path, at); err != nil {
				t.logger.Error("recording visitor", "error", err)
				return
			}
			t.metrics.PageView()
		}()
	}
}

// Wait blocks until in-flight visit writes finish.
func (t *visitorTracker) Wait() {
	t.wg.Wait()
}

// Cleanup old visitor data for privacy compliance
func cleanupOldVisitorData(ctx context.Context, store *Store, retention time.Duration, now time.Time, logger *slog.Logger) {
	n, err := store.DeleteVisitorsBefore(ctx, now.Add(-retention))
	if err != nil {
		logger.Error("privacy cleanup failed", "error", err)
		return
	}
	if n > 0 {
		logger.Info("privacy cleanup removed old visitor records", "rows", n, "retention", retention.String())
	}
}

// runRetention repeats the cleanup daily until ctx is done.
func runRetention(ctx context.Context, store *Store, retention time.Duration, logger *slog.Logger) error {
	cleanupOldVisitorData(ctx, store, retention, time.Now(), logger)
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			cleanupOldVisitorData(ctx, store, retention, now, logger)
		}
	}
}

// Setup all admin routes
func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		s.render(c, http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": s.cfg.VisitorRetention.String(),
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		s.render(c, http.StatusOK, "admin-login.html", gin.H{
			"title":    "Admin Login",
			"disabled": !s.admin.enabled(),
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !s.admin.checkCredentials(username, password) {
			s.log.Warn("failed admin login", "client", s.admin.hashIP(c.ClientIP()))
			s.render(c, http.StatusUnauthorized, "admin-login.html", gin.H{
				"title":    "Admin Login",
				"error":    "Invalid credentials",
				"disabled": !s.admin.enabled(),
			})
			return
		}

		// Set secure cookie (24 hours)
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		s.log.Info("admin login", "client", s.admin.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.admin.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			s.log.Error("loading admin stats", "error", err)
			s.render(c, http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		s.render(c, http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			s.log.Error("loading visitors", "error", err)
			s.render(c, http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		s.render(c, http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	adminGroup.GET("/downloads", func(c *gin.Context) {
		downloads, err := s.store.Downloads(c.Request.Context())
		if err != nil {
			s.log.Error("loading downloads", "error", err)
			s.render(c, http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load downloads",
			})
			return
		}
		s.render(c, http.StatusOK, "admin-downloads.html", gin.H{
			"title":     "Downloads",
			"downloads": downloads,
		})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		cleanupOldVisitorData(c.Request.Context(), s.store, s.cfg.VisitorRetention, time.Now(), s.log)
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", "client", s.admin.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}
