package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ToggleUserPill enrolls a catalog pill in the user's cabinet, or removes it
// when already enrolled. Returns true when the pill ended up enrolled.
func (db *DB) ToggleUserPill(ctx context.Context, userID uuid.UUID, pillID int64) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM user_pills WHERE user_id = $1 AND pill_id = $2`,
		userID, pillID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove cabinet pill: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_pills (user_id, pill_id) VALUES ($1, $2)`,
		userID, pillID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to enroll cabinet pill: %w", err)
	}
	return true, nil
}

// IsEnrolled reports whether a catalog pill is in the user's cabinet.
func (db *DB) IsEnrolled(ctx context.Context, userID uuid.UUID, pillID int64) (bool, error) {
	var enrolled bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_pills WHERE user_id = $1 AND pill_id = $2)`,
		userID, pillID,
	).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("failed to check cabinet enrollment: %w", err)
	}
	return enrolled, nil
}

// ListUserPills returns the catalog pills in a user's cabinet, most recently
// added first.
func (db *DB) ListUserPills(ctx context.Context, userID uuid.UUID) ([]CabinetEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, p.name, p.company, p.standard, p.cover_image, p.price, up.created_at
		 FROM user_pills up JOIN pills p ON p.id = up.pill_id
		 WHERE up.user_id = $1
		 ORDER BY up.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cabinet pills: %w", err)
	}
	defer rows.Close()

	var entries []CabinetEntry
	for rows.Next() {
		var e CabinetEntry
		if err := rows.Scan(&e.Pill.ID, &e.Pill.Name, &e.Pill.Company, &e.Pill.Description,
			&e.Pill.CoverImage, &e.Pill.Price, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cabinet entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CreateCustomPill records a product the user takes that is not in the
// catalog.
func (db *DB) CreateCustomPill(ctx context.Context, userID uuid.UUID, name, brand, memo, ingredients string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO custom_pills (user_id, name, brand, memo, ingredients)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, name, brand, memo, ingredients,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create custom pill: %w", err)
	}
	return id, nil
}

// GetCustomPill retrieves one of the user's custom pills. Returns (nil, nil)
// when the pill does not exist or belongs to someone else.
func (db *DB) GetCustomPill(ctx context.Context, userID uuid.UUID, customPillID int64) (*CustomPill, error) {
	var p CustomPill
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, brand, memo, ingredients, created_at
		 FROM custom_pills WHERE id = $1 AND user_id = $2`,
		customPillID, userID,
	).Scan(&p.ID, &p.Name, &p.Brand, &p.Memo, &p.Ingredients, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get custom pill: %w", err)
	}
	return &p, nil
}

// ListCustomPills returns the user's custom pills, most recent first.
func (db *DB) ListCustomPills(ctx context.Context, userID uuid.UUID) ([]CustomPill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, brand, memo, ingredients, created_at
		 FROM custom_pills WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom pills: %w", err)
	}
	defer rows.Close()

	var pills []CustomPill
	for rows.Next() {
		var p CustomPill
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Memo, &p.Ingredients, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom pill: %w", err)
		}
		pills = append(pills, p)
	}
	return pills, nil
}

// UpdateCustomPill rewrites a custom pill the user owns. Returns false when
// no such pill exists for the user.
func (db *DB) UpdateCustomPill(ctx context.Context, userID uuid.UUID, customPillID int64, name, brand, memo, ingredients string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE custom_pills SET name = $1, brand = $2, memo = $3, ingredients = $4
		 WHERE id = $5 AND user_id = $6`,
		name, brand, memo, ingredients, customPillID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update custom pill: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCustomPill removes a custom pill the user owns. Returns false when
// no such pill exists for the user.
func (db *DB) DeleteCustomPill(ctx context.Context, userID uuid.UUID, customPillID int64) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM custom_pills WHERE id = $1 AND user_id = $2`,
		customPillID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete custom pill: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
