package db

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a community post attached to a pill.
type Thread struct {
	ID             int64     `json:"id"`
	PillID         int64     `json:"pill_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	CommentCount   int       `json:"comment_count"`
	LikeCount      int       `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ThreadSummary is the list-view projection of a thread.
type ThreadSummary struct {
	ID             int64     `json:"id"`
	AuthorNickname string    `json:"author_nickname"`
	Title          string    `json:"title"`
	CommentCount   int       `json:"comment_count"`
	LikeCount      int       `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Comment is a reply on a thread.
type Comment struct {
	ID             int64     `json:"id"`
	ThreadID       int64     `json:"thread_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}
