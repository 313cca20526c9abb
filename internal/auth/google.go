// Package auth handles sign-in and session resolution. Identity comes from
// Google's OAuth flow; the rest of the app only ever sees the resulting user
// ID, which it uses as a scoping key for the record set. Demo sessions skip
// OAuth entirely and are pinned to the seeded in-memory store.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// Profile is the slice of the Google userinfo response we care about.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleAuth wraps the OAuth code flow against Google.
type GoogleAuth struct {
	config *oauth2.Config
}

func NewGoogleAuth(clientID, clientSecret, redirectURL string) *GoogleAuth {
	return &GoogleAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// Configured reports whether OAuth credentials were provided. Without them
// only demo sessions work.
func (g *GoogleAuth) Configured() bool {
	return g.config.ClientID != "" && g.config.ClientSecret != ""
}

// LoginURL returns the Google consent-screen URL for the given state token.
func (g *GoogleAuth) LoginURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a token and fetches the profile.
func (g *GoogleAuth) Exchange(ctx context.Context, code string) (Profile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("oauth code exchange: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("userinfo returned HTTP %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.Email == "" {
		return Profile{}, fmt.Errorf("userinfo response missing email")
	}
	return profile, nil
}
