package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/config"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
)

const (
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session_id"
)

// Session resolves the caller's session id from the X-Session-ID header or
// the session cookie, issuing a new one when neither holds a valid id.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if !domain.ValidateSessionID(id) {
			id, _ = c.Cookie(cfg.CookieName)
		}
		if !domain.ValidateSessionID(id) {
			id = string(domain.NewSessionID())
		}

		SetSessionCookie(c, cfg, id)
		c.Header(SessionHeader, id)
		c.Set(sessionContextKey, domain.SessionID(id))
		c.Next()
	}
}

// SetSessionCookie refreshes the cookie; an empty id clears it.
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, id string) {
	maxAge := int(cfg.TTL.Seconds())
	if id == "" {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.CookieSecure, true)
}

func SessionID(c *gin.Context) (domain.SessionID, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return "", false
	}
	id, ok := value.(domain.SessionID)
	return id, ok
}
