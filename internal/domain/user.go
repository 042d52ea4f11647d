package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxUsernameLength = 64
	MinPasswordLength = 1
	MaxPasswordLength = 72
)

// User is a registered chat participant.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	AuthToken    string
	CreatedAt    time.Time
}

// AuthPair is handed to a client after a successful login and must be
// attached to every subsequent Chat call as request metadata.
type AuthPair struct {
	UserID uuid.UUID
	Token  string
}

// Credentials is the username/password pair used by registration and login.
type Credentials struct {
	Username string
	Password string
}

// Validate checks field limits. Username is trimmed in place.
func (c *Credentials) Validate() error {
	c.Username = strings.TrimSpace(c.Username)

	var verr ValidationError
	switch {
	case c.Username == "":
		verr.Add("username", "required")
	case len(c.Username) > MaxUsernameLength:
		verr.Add("username", "too long")
	}

	// bcrypt silently truncates anything past 72 bytes.
	switch {
	case len(c.Password) < MinPasswordLength:
		verr.Add("password", "required")
	case len(c.Password) > MaxPasswordLength:
		verr.Add("password", "too long")
	}

	return verr.Err()
}
