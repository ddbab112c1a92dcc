package models

import "time"

// Session is the client's locally persisted authentication state. Exactly one
// session survives restarts so the user stays signed in between runs.
type Session struct {
	// UserID is the server-assigned account identifier.
	UserID int64 `json:"user_id"`

	// Login is the account login the session belongs to.
	Login string `json:"login"`

	// Token is the bearer JWT issued by the server. The background refresh
	// worker replaces it before expiry.
	Token string `json:"token"`

	// SavedAt records when the session row was last written.
	SavedAt time.Time `json:"saved_at"`
}
