package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListThreads returns one page of a pill's community threads, newest
// first, with comment and like counts.
func (db *DB) ListThreads(ctx context.Context, pillID int64, page, pageSize int) ([]ThreadSummary, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM threads WHERE pill_id = $1`, pillID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count threads: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	rows, err := db.pool.Query(ctx,
		`SELECT t.id, u.nickname, t.title,
		        (SELECT COUNT(*) FROM comments c WHERE c.thread_id = t.id),
		        (SELECT COUNT(*) FROM thread_likes l WHERE l.thread_id = t.id),
		        t.created_at
		 FROM threads t JOIN users u ON u.id = t.author_id
		 WHERE t.pill_id = $1
		 ORDER BY t.created_at DESC LIMIT $2 OFFSET $3`,
		pillID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []ThreadSummary
	for rows.Next() {
		var t ThreadSummary
		if err := rows.Scan(&t.ID, &t.AuthorNickname, &t.Title, &t.CommentCount, &t.LikeCount, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	return threads, total, nil
}

// CreateThread inserts a community post on a pill and returns its id.
func (db *DB) CreateThread(ctx context.Context, authorID uuid.UUID, pillID int64, title, body string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO threads (pill_id, author_id, title, body) VALUES ($1, $2, $3, $4) RETURNING id`,
		pillID, authorID, title, body,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create thread: %w", err)
	}
	return id, nil
}

// GetThread retrieves a thread with counts. Returns (nil, nil) when it does
// not exist.
func (db *DB) GetThread(ctx context.Context, threadID int64) (*Thread, error) {
	var t Thread
	err := db.pool.QueryRow(ctx,
		`SELECT t.id, t.pill_id, t.author_id, u.nickname, t.title, t.body,
		        (SELECT COUNT(*) FROM comments c WHERE c.thread_id = t.id),
		        (SELECT COUNT(*) FROM thread_likes l WHERE l.thread_id = t.id),
		        t.created_at, t.updated_at
		 FROM threads t JOIN users u ON u.id = t.author_id
		 WHERE t.id = $1`,
		threadID,
	).Scan(&t.ID, &t.PillID, &t.AuthorID, &t.AuthorNickname, &t.Title, &t.Body,
		&t.CommentCount, &t.LikeCount, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return &t, nil
}

// UpdateThread rewrites a thread's title and body. Returns false when the
// thread does not exist or the user is not its author.
func (db *DB) UpdateThread(ctx context.Context, authorID uuid.UUID, threadID int64, title, body string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE threads SET title = $1, body = $2, updated_at = NOW()
		 WHERE id = $3 AND author_id = $4`,
		title, body, threadID, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update thread: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteThread removes a thread the user authored. Comments and likes go
// with it via ON DELETE CASCADE. Returns false when the thread does not
// exist or the user is not its author.
func (db *DB) DeleteThread(ctx context.Context, authorID uuid.UUID, threadID int64) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM threads WHERE id = $1 AND author_id = $2`,
		threadID, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete thread: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ToggleThreadLike likes a thread, or removes the like when the user already
// liked it. Returns the liked state and the new like count.
func (db *DB) ToggleThreadLike(ctx context.Context, userID uuid.UUID, threadID int64) (bool, int, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM thread_likes WHERE user_id = $1 AND thread_id = $2`,
		userID, threadID,
	)
	if err != nil {
		return false, 0, fmt.Errorf("failed to remove thread like: %w", err)
	}
	liked := tag.RowsAffected() == 0
	if liked {
		_, err = db.pool.Exec(ctx,
			`INSERT INTO thread_likes (user_id, thread_id) VALUES ($1, $2)`,
			userID, threadID,
		)
		if err != nil {
			return false, 0, fmt.Errorf("failed to add thread like: %w", err)
		}
	}

	var count int
	err = db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM thread_likes WHERE thread_id = $1`, threadID,
	).Scan(&count)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count thread likes: %w", err)
	}
	return liked, count, nil
}

// ListComments returns a thread's comments, oldest first.
func (db *DB) ListComments(ctx context.Context, threadID int64) ([]Comment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT c.id, c.thread_id, c.author_id, u.nickname, c.body, c.created_at
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.thread_id = $1 ORDER BY c.created_at`,
		threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.ThreadID, &c.AuthorID, &c.AuthorNickname, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// CreateComment inserts a reply on a thread and returns its id.
func (db *DB) CreateComment(ctx context.Context, authorID uuid.UUID, threadID int64, body string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO comments (thread_id, author_id, body) VALUES ($1, $2, $3) RETURNING id`,
		threadID, authorID, body,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}
	return id, nil
}

// GetComment retrieves one comment. Returns (nil, nil) when it does not
// exist.
func (db *DB) GetComment(ctx context.Context, commentID int64) (*Comment, error) {
	var c Comment
	err := db.pool.QueryRow(ctx,
		`SELECT c.id, c.thread_id, c.author_id, u.nickname, c.body, c.created_at
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.id = $1`,
		commentID,
	).Scan(&c.ID, &c.ThreadID, &c.AuthorID, &c.AuthorNickname, &c.Body, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment the user authored. Returns false when the
// comment does not exist or the user is not its author.
func (db *DB) DeleteComment(ctx context.Context, authorID uuid.UUID, commentID int64) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM comments WHERE id = $1 AND author_id = $2`,
		commentID, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
