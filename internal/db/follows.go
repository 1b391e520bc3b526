package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetProfile retrieves a user's public profile with follow counts. Returns
// (nil, nil) when the user does not exist.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT u.id, u.nickname, u.gender, u.age, u.profile_image,
		        (SELECT COUNT(*) FROM follows f WHERE f.followee_id = u.id),
		        (SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id),
		        u.created_at
		 FROM users u WHERE u.id = $1`,
		userID,
	).Scan(&p.ID, &p.Nickname, &p.Gender, &p.Age, &p.ProfileImage,
		&p.FollowersCount, &p.FollowingsCount, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// ToggleFollow follows a user, or unfollows when already following. Returns
// the followed state plus the followee's follower and following counts.
func (db *DB) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, int, int, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return false, 0, 0, fmt.Errorf("failed to remove follow: %w", err)
	}
	followed := tag.RowsAffected() == 0
	if followed {
		_, err = db.pool.Exec(ctx,
			`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)`,
			followerID, followeeID,
		)
		if err != nil {
			return false, 0, 0, fmt.Errorf("failed to add follow: %w", err)
		}
	}

	var followers, followings int
	err = db.pool.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM follows WHERE followee_id = $1),
		        (SELECT COUNT(*) FROM follows WHERE follower_id = $1)`,
		followeeID,
	).Scan(&followers, &followings)
	if err != nil {
		return false, 0, 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return followed, followers, followings, nil
}
