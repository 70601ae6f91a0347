package models

// PasswordResetEvent is published when a user requests a password reset so that an
// out-of-band mailer can deliver the token.
type PasswordResetEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix time (seconds) when the reset was requested.
	UserID    int64  `json:"user_id"`    // UserID is the identifier of the account being reset.
	Email     string `json:"email"`      // Email is the address the token must be delivered to.
	Token     string `json:"token"`      // Token is the single-use reset token.
	ExpiresAt int64  `json:"expires_at"` // ExpiresAt is the Unix time (seconds) after which the token is rejected.
	Operation string `json:"operation"`  // Operation is always "password_reset_requested".
}
