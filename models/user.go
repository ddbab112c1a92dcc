package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database on registration.
	UserID int64 `json:"user_id"`

	// Login is the unique user login identifier.
	// Typically used during authentication and shown in the UI greeting.
	Login string `json:"login"`

	// AuthHash stores the derived form of the user's password.
	// Either an Argon2id encoded string or a legacy hex SHA-256 digest,
	// never plaintext. It is not exposed via JSON.
	AuthHash string `json:"-"`

	// Email is an optional contact address collected at signup.
	// Empty when the user skipped the field; never used for login.
	Email string `json:"email,omitempty"`

	// RegisteredAt is the timestamp when the account was created.
	RegisteredAt time.Time `json:"registered_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the wire form of a signup or login request.
// Password travels plaintext inside the TLS channel and is hashed
// server-side only; it never touches storage.
type Credentials struct {
	// Login is the account name the user types into the auth form.
	Login string `json:"login"`

	// Password is the plaintext password.
	Password string `json:"password"`

	// Email is the optional contact address from the signup form.
	// Login requests leave it empty.
	Email string `json:"email,omitempty"`
}

// ChangePasswordRequest carries the settings-page password change form.
// Validation order is fixed: empty new password, new/confirm mismatch,
// wrong current password.
type ChangePasswordRequest struct {
	// CurrentPassword must match the stored hash of the authenticated user.
	CurrentPassword string `json:"current_password"`

	// NewPassword is the replacement password.
	NewPassword string `json:"new_password"`

	// ConfirmPassword must equal NewPassword.
	ConfirmPassword string `json:"confirm_password"`
}
