// Package session holds the credentials used to talk to the reporting API.
package session

import (
	"time"
)

// Session is an authenticated connection to a reporting server.
// It is passed explicitly to every API call; nothing caches it globally.
type Session struct {
	ServerURL    string    `toml:"server_url"`
	Token        string    `toml:"token"`
	RefreshToken string    `toml:"refresh_token"`
	ExpiresAt    time.Time `toml:"expires_at"`
	Username     string    `toml:"username"`
	UserID       int       `toml:"user_id"`
}

// Valid reports whether the session can authenticate a request at now.
// A zero ExpiresAt never expires.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.ServerURL == "" || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// MaskedToken returns a log-safe prefix of the token.
func (s *Session) MaskedToken() string {
	return Mask(s.Token)
}

// Mask keeps the first 8 characters of a secret.
func Mask(secret string) string {
	const keep = 8
	if len(secret) <= keep {
		return "***"
	}
	return secret[:keep] + "..."
}
