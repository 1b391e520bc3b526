package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account row.
type User struct {
	ID           uuid.UUID `json:"id"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	Gender       string    `json:"gender,omitempty"`     // "M", "F", or "" for undisclosed
	Age          int       `json:"age,omitempty"`        // 0 = undisclosed
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the public view of a user, with follow counts.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	Nickname        string    `json:"nickname"`
	Gender          string    `json:"gender,omitempty"`
	Age             int       `json:"age,omitempty"`
	ProfileImage    string    `json:"profile_image,omitempty"`
	FollowersCount  int       `json:"followers_count"`
	FollowingsCount int       `json:"followings_count"`
	CreatedAt       time.Time `json:"created_at"`
}
