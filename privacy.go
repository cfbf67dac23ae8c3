// privacy.go - request logging without raw client addresses
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ipHasher turns client IPs into stable, salted, truncated hashes so
// logs can correlate requests without storing addresses.
type ipHasher struct {
	salt string
}

// newIPHasher uses salt, or a random one when salt is empty. A random
// salt means hashes do not survive a restart.
func newIPHasher(salt string) (*ipHasher, error) {
	if salt == "" {
		generated, err := generateSalt()
		if err != nil {
			return nil, err
		}
		salt = generated
	}
	return &ipHasher{salt: salt}, nil
}

func generateSalt() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

func (h *ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Asset paths are not logged.
func untrackedPath(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

// requestLogger logs one line per page request. Clients sending DNT: 1
// are logged without the client hash.
func requestLogger(logger *slog.Logger, hasher *ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if untrackedPath(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if c.GetHeader("DNT") != "1" {
			attrs = append(attrs, "client", hasher.hash(c.ClientIP()))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		logger.Info("request", attrs...)
	}
}
