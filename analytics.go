// analytics.go - privacy-conscious page view logging
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// untrackedPrefixes are paths that are never counted as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/favicon",
	"/health",
	"/api/",
}

// visitorTracker logs one line per page view. Client IPs are salted and
// hashed before they reach the log.
type visitorTracker struct {
	salt string
	log  zerolog.Logger
}

func newVisitorTracker(log zerolog.Logger) (*visitorTracker, error) {
	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}
	return &visitorTracker{salt: salt, log: log}, nil
}

func generateSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable for one process lifetime, since the salt is regenerated
// on every start.
func (t *visitorTracker) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (t *visitorTracker) shouldTrack(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	// Respect Do Not Track
	if c.GetHeader("DNT") == "1" {
		return false
	}
	// HTMX fragments belong to a page view already counted
	if c.GetHeader("HX-Request") == "true" {
		return false
	}
	path := c.Request.URL.Path
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

func (t *visitorTracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !t.shouldTrack(c) || c.Writer.Status() >= 400 {
			return
		}
		t.log.Info().
			Str("visitor", t.hashIP(c.ClientIP())).
			Str("path", c.Request.URL.Path).
			Str("user_agent", c.Request.UserAgent()).
			Str("referer", c.Request.Referer()).
			Msg("page view")
	}
}
