package db

import (
	"context"
	"fmt"
)

// GetOrCreateCategory returns the category id for name, inserting it when
// missing.
func (db *DB) GetOrCreateCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to get or create category: %w", err)
	}
	return id, nil
}

// GetOrCreateSubstance returns the substance id for name, inserting it when
// missing.
func (db *DB) GetOrCreateSubstance(ctx context.Context, name string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO substances (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to get or create substance: %w", err)
	}
	return id, nil
}

// LinkCategorySubstance records that a substance belongs to a category.
// Linking the same pair twice is a no-op.
func (db *DB) LinkCategorySubstance(ctx context.Context, categoryID, substanceID int64) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO category_substances (category_id, substance_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		categoryID, substanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to link category substance: %w", err)
	}
	return nil
}

// UpsertPill inserts or refreshes a pill keyed by its registry report
// number, returning the row id. Purchase fields are left alone on refresh so
// an already-backfilled pill keeps its link.
func (db *DB) UpsertPill(ctx context.Context, p *Pill) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO pills
		   (report_no, name, company, category_id, license_no, permit_date,
		    shelf_life, shape, appearance, function, usage_method, caution,
		    storage, standard, raw_materials, cover_image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 ON CONFLICT (report_no) DO UPDATE SET
		   name = EXCLUDED.name,
		   company = EXCLUDED.company,
		   category_id = EXCLUDED.category_id,
		   license_no = EXCLUDED.license_no,
		   permit_date = EXCLUDED.permit_date,
		   shelf_life = EXCLUDED.shelf_life,
		   shape = EXCLUDED.shape,
		   appearance = EXCLUDED.appearance,
		   function = EXCLUDED.function,
		   usage_method = EXCLUDED.usage_method,
		   caution = EXCLUDED.caution,
		   storage = EXCLUDED.storage,
		   standard = EXCLUDED.standard,
		   raw_materials = EXCLUDED.raw_materials,
		   cover_image = COALESCE(pills.cover_image, EXCLUDED.cover_image)
		 RETURNING id`,
		p.ReportNo, p.Name, p.Company, p.CategoryID, p.LicenseNo, p.PermitDate,
		p.ShelfLife, p.Shape, p.Appearance, p.Function, p.UsageMethod, p.Caution,
		p.Storage, p.Standard, p.RawMaterials, p.CoverImage,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert pill: %w", err)
	}
	return id, nil
}

// ReplaceNutrients swaps the full nutrient list of a pill.
func (db *DB) ReplaceNutrients(ctx context.Context, pillID int64, nutrients []Nutrient) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM nutrients WHERE pill_id = $1`, pillID); err != nil {
		return fmt.Errorf("failed to clear nutrients: %w", err)
	}
	for _, n := range nutrients {
		_, err := tx.Exec(ctx,
			`INSERT INTO nutrients (pill_id, substance_id, substance_name, value, unit)
			 VALUES ($1, $2, $3, $4, $5)`,
			pillID, n.SubstanceID, n.SubstanceName, n.Value, n.Unit,
		)
		if err != nil {
			return fmt.Errorf("failed to insert nutrient: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit nutrients: %w", err)
	}
	return nil
}

// ReplaceAllergens swaps the full allergen list of a pill.
func (db *DB) ReplaceAllergens(ctx context.Context, pillID int64, allergens []string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM allergens WHERE pill_id = $1`, pillID); err != nil {
		return fmt.Errorf("failed to clear allergens: %w", err)
	}
	for _, name := range allergens {
		_, err := tx.Exec(ctx,
			`INSERT INTO allergens (pill_id, name) VALUES ($1, $2)`,
			pillID, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert allergen: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit allergens: %w", err)
	}
	return nil
}
