package models

import "time"

// Swipe actions
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// User represents a user profile in the system
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Gender       *string   `json:"gender"`
	DateOfBirth  *string   `json:"date_of_birth"`
	Location     *string   `json:"location"`
	Bio          *string   `json:"bio"`
	Interests    []string  `json:"interests"`
	Photos       []string  `json:"photos"`
	PushToken    *string   `json:"push_token,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session represents a bearer token issued at login
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Swipe represents one user's like/pass decision about a candidate.
// Records are append-only; the same (UserID, TargetID) pair may appear
// multiple times.
type Swipe struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TargetID  string    `json:"target_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// Match represents a confirmed mutual like between two users.
// UserA and UserB are stored in canonical order (UserA < UserB) so the
// unordered pair maps to exactly one row.
type Match struct {
	ID        string    `json:"id"`
	UserA     string    `json:"user_a"`
	UserB     string    `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
}

// CanonicalPair returns the two ids in canonical (lexicographic) order.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
