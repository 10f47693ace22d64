package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var cspDirectives = []string{
	"script-src 'self' 'unsafe-inline' 'unsafe-eval' unpkg.com cdn.jsdelivr.net",
	"style-src 'self' 'unsafe-inline' fonts.googleapis.com fonts.gstatic.com cdnjs.cloudflare.com",
	"img-src 'self' data: https:",
	"font-src 'self' data: fonts.googleapis.com fonts.gstatic.com cdnjs.cloudflare.com",
	"worker-src 'self' blob: data:",
	"connect-src 'self'",
	"object-src 'none'",
}

var securityHeaders = map[string]string{
	"Content-Security-Policy":   strings.Join(cspDirectives, ";"),
	"X-Frame-Options":           "DENY",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
	"X-XSS-Protection":          "1; mode=block",
	"X-Content-Type-Options":    "nosniff",
	"Referrer-Policy":           "no-referrer-when-downgrade",
}

// SecurityHeaders sets the site-wide response headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range securityHeaders {
			h.Set(k, v)
		}
		c.Next()
	}
}
