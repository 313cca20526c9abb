package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "auth.session"

// Middleware resolves the bearer token into a session and puts it on the gin
// context. Requests without a valid session are rejected with 401.
func Middleware(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		session, found := sessions.Lookup(token)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by Middleware. The bool is false
// on routes that skipped the middleware.
func CurrentSession(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
