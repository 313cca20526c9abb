package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/auth"
	"github.com/jobpulse/jobpulse/internal/store"
)

type AuthHandler struct {
	Google   *auth.GoogleAuth
	Sessions *auth.SessionManager
	Store    store.Store
}

func NewAuthHandler(google *auth.GoogleAuth, sessions *auth.SessionManager, st store.Store) *AuthHandler {
	return &AuthHandler{Google: google, Sessions: sessions, Store: st}
}

// Login is GET /auth/login: redirects the browser to Google's consent screen.
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.Google.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured; try demo mode"})
		return
	}
	state := h.Sessions.NewState()
	c.Redirect(http.StatusTemporaryRedirect, h.Google.LoginURL(state))
}

// Callback is GET /auth/callback: Google redirects back here with a code,
// which we trade for a profile and turn into a session token.
func (h *AuthHandler) Callback(c *gin.Context) {
	if !h.Sessions.ConsumeState(c.Query("state")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	profile, err := h.Google.Exchange(ctx, c.Query("code"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "sign-in failed: " + err.Error()})
		return
	}

	user, err := h.Store.FindOrCreateUser(ctx, profile.Email, profile.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	session := h.Sessions.Create(user.ID, user.Email, false)
	c.JSON(http.StatusOK, gin.H{"token": session.Token, "user": user})
}

// Demo is POST /auth/demo: starts a session against the seeded in-memory
// record set. Same handlers, same engines — only the data source differs.
func (h *AuthHandler) Demo(c *gin.Context) {
	session := h.Sessions.Create(store.DemoUserID, "demo@jobpulse.local", true)
	c.JSON(http.StatusOK, gin.H{"token": session.Token, "demo": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		h.Sessions.Revoke(token)
	}
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// Me is GET /auth/me: the identity of the active session, used by the SPA to
// decide which record set it is looking at.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := auth.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": session.UserID,
		"email":   session.Email,
		"demo":    session.Demo,
	})
}
