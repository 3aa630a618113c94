package domain

import "time"

// Credential is a username/password record in the local credential list.
// Passwords are stored as provided; this reproduces the mock-auth behavior of
// the system and is not suitable beyond a demo.
type Credential struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
