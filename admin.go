// admin.go - privacy-conscious analytics and admin dashboard
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	adminCookie     = "admin_token"
	adminSessionTTL = 24 * time.Hour
)

// adminAuth issues and verifies admin session tokens.
type adminAuth struct {
	username string
	password string
	secret   []byte
	// hashingSalt keeps hashed IPs consistent per process only.
	hashingSalt string
	now         func() time.Time
}

func newAdminAuth(cfg AdminConfig) (*adminAuth, error) {
	secret := cfg.Secret
	if secret == "" {
		generated, err := randomHex(32)
		if err != nil {
			return nil, fmt.Errorf("generating admin secret: %w", err)
		}
		secret = generated
	}
	salt, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}

	if gin.Mode() == gin.DebugMode {
		if cfg.Username == "admin" {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
		if cfg.Password == "admin123" {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	log.Printf("Admin access available at: /admin/login")
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	return &adminAuth{
		username:    cfg.Username,
		password:    cfg.Password,
		secret:      []byte(secret),
		hashingSalt: salt,
		now:         time.Now,
	}, nil
}

func randomHex(n int) (string, error) {
	bytes := make([]byte, n)
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

func (a *adminAuth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) issue() (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   a.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(adminSessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *adminAuth) verify(token string) error {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return err
	}
	if claims.Subject != a.username {
		return fmt.Errorf("token subject %q is not the admin", claims.Subject)
	}
	return nil
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || a.verify(token) != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Privacy-conscious visitor tracking middleware
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip tracking for static files, live signals and admin pages
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") ||
			path == "/live" {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashedIP := s.admin.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		go func() {
			if err := s.db.RecordVisit(context.Background(), hashedIP, userAgent, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// Cleanup old visitor data for privacy compliance
func (s *server) cleanupOldVisitorData() {
	rowsDeleted, err := s.db.Cleanup(context.Background())
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d records older than 12 months", rowsDeleted)
	}
}

// Setup all admin routes
func (s *server) setupAdminRoutes(r *gin.Engine) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !s.admin.checkCredentials(username, password) {
			log.Printf("Failed admin login attempt from %s", s.admin.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		token, err := s.admin.issue()
		if err != nil {
			log.Printf("Error issuing admin token: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to start session",
			})
			return
		}
		c.SetCookie(adminCookie, token, int(adminSessionTTL.Seconds()), "/admin", "", false, true)
		log.Printf("Admin login successful from %s", s.admin.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.admin.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.admin.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"sections": s.sections.Sections(),
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.db.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	adminGroup.GET("/messages", func(c *gin.Context) {
		messages, err := s.db.Messages(c.Request.Context(), 200)
		if err != nil {
			log.Printf("Error loading messages: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{
			"messages": messages,
		})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go s.cleanupOldVisitorData()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.admin.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
