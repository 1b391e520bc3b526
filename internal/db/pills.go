package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pillgood/backend/internal/matching"
)

// DefaultPageSize is the catalog page size when the caller doesn't ask for one.
const DefaultPageSize = 20

// shapeAliases maps the filter labels the frontend sends to the words that
// actually appear in the registry's product-form field.
var shapeAliases = map[string][]string{
	"정(알약)":  {"정", "알약"},
	"분말(가루)": {"분말", "가루"},
}

// ListPills returns one page of the catalog, newest first, applying the
// keyword search and product-form filters.
func (db *DB) ListPills(ctx context.Context, filter PillFilter) ([]PillSummary, int, error) {
	where := []string{"1=1"}
	args := []any{}
	argNum := 1

	if filter.Keyword != "" {
		column := ""
		switch filter.SearchType {
		case "name":
			column = "name"
		case "company":
			column = "company"
		case "ingredient":
			column = "standard"
		}
		if column != "" {
			where = append(where, fmt.Sprintf("%s ILIKE $%d", column, argNum))
			args = append(args, "%"+filter.Keyword+"%")
			argNum++
		}
	}

	if len(filter.Shapes) > 0 {
		shapeConds := []string{}
		for _, shape := range filter.Shapes {
			words, ok := shapeAliases[shape]
			if !ok {
				words = []string{shape}
			}
			for _, word := range words {
				shapeConds = append(shapeConds, fmt.Sprintf("shape ILIKE $%d", argNum))
				args = append(args, "%"+word+"%")
				argNum++
			}
		}
		where = append(where, "("+strings.Join(shapeConds, " OR ")+")")
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM pills WHERE "+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pills: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	query := fmt.Sprintf(
		`SELECT id, name, company, standard, cover_image, price
		 FROM pills WHERE %s
		 ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		whereClause, argNum, argNum+1,
	)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pills: %w", err)
	}
	defer rows.Close()

	var pills []PillSummary
	for rows.Next() {
		var p PillSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.CoverImage, &p.Price); err != nil {
			return nil, 0, fmt.Errorf("failed to scan pill: %w", err)
		}
		pills = append(pills, p)
	}
	return pills, total, nil
}

// GetPill retrieves one pill with its nutrients and allergens. Returns
// (nil, nil) when the pill does not exist.
func (db *DB) GetPill(ctx context.Context, pillID int64) (*Pill, error) {
	var p Pill
	err := db.pool.QueryRow(ctx,
		`SELECT p.id, p.report_no, p.name, p.company, p.category_id, c.name,
		        p.license_no, p.permit_date, p.shelf_life, p.shape, p.appearance,
		        p.function, p.usage_method, p.caution, p.storage, p.standard,
		        p.raw_materials, p.cover_image,
		        p.purchase_url, p.price, p.mall_name, p.amount, COALESCE(p.unit_type, '')
		 FROM pills p JOIN categories c ON c.id = p.category_id
		 WHERE p.id = $1`,
		pillID,
	).Scan(&p.ID, &p.ReportNo, &p.Name, &p.Company, &p.CategoryID, &p.CategoryName,
		&p.LicenseNo, &p.PermitDate, &p.ShelfLife, &p.Shape, &p.Appearance,
		&p.Function, &p.UsageMethod, &p.Caution, &p.Storage, &p.Standard,
		&p.RawMaterials, &p.CoverImage,
		&p.PurchaseURL, &p.Price, &p.MallName, &p.Amount, &p.UnitType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pill: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT n.substance_id, n.substance_name, n.value, n.unit
		 FROM nutrients n WHERE n.pill_id = $1 ORDER BY n.substance_name`,
		pillID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list nutrients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n Nutrient
		if err := rows.Scan(&n.SubstanceID, &n.SubstanceName, &n.Value, &n.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan nutrient: %w", err)
		}
		p.Nutrients = append(p.Nutrients, n)
	}

	allergenRows, err := db.pool.Query(ctx,
		`SELECT name FROM allergens WHERE pill_id = $1 ORDER BY name`, pillID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allergens: %w", err)
	}
	defer allergenRows.Close()
	for allergenRows.Next() {
		var name string
		if err := allergenRows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan allergen: %w", err)
		}
		p.Allergens = append(p.Allergens, name)
	}

	return &p, nil
}

// ListCategories returns every category, name-sorted.
func (db *DB) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := db.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// GetCategory retrieves a category with its substances. Returns (nil, nil)
// when it does not exist.
func (db *DB) GetCategory(ctx context.Context, categoryID int64) (*Category, error) {
	var c Category
	err := db.pool.QueryRow(ctx,
		`SELECT id, name FROM categories WHERE id = $1`, categoryID,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT s.id, s.name, s.efficacy, s.side_effects, s.recommended_intake
		 FROM substances s
		 JOIN category_substances cs ON cs.substance_id = s.id
		 WHERE cs.category_id = $1 ORDER BY s.name`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list category substances: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s Substance
		if err := rows.Scan(&s.ID, &s.Name, &s.Efficacy, &s.SideEffects, &s.RecommendedIntake); err != nil {
			return nil, fmt.Errorf("failed to scan substance: %w", err)
		}
		c.Substances = append(c.Substances, s)
	}
	return &c, nil
}

// GetSubstance retrieves one substance. Returns (nil, nil) when it does not
// exist.
func (db *DB) GetSubstance(ctx context.Context, substanceID int64) (*Substance, error) {
	var s Substance
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, efficacy, side_effects, recommended_intake
		 FROM substances WHERE id = $1`,
		substanceID,
	).Scan(&s.ID, &s.Name, &s.Efficacy, &s.SideEffects, &s.RecommendedIntake)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get substance: %w", err)
	}
	return &s, nil
}

// ListPillsBySubstance returns one page of pills containing the substance.
func (db *DB) ListPillsBySubstance(ctx context.Context, substanceID int64, page, pageSize int) ([]PillSummary, int, error) {
	var total int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM nutrients WHERE substance_id = $1`, substanceID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pills by substance: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	rows, err := db.pool.Query(ctx,
		`SELECT p.id, p.name, p.company, p.standard, p.cover_image, p.price
		 FROM pills p JOIN nutrients n ON n.pill_id = p.id
		 WHERE n.substance_id = $1
		 ORDER BY p.id DESC LIMIT $2 OFFSET $3`,
		substanceID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pills by substance: %w", err)
	}
	defer rows.Close()

	var pills []PillSummary
	for rows.Next() {
		var p PillSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.CoverImage, &p.Price); err != nil {
			return nil, 0, fmt.Errorf("failed to scan pill: %w", err)
		}
		pills = append(pills, p)
	}
	return pills, total, nil
}

// PillsMissingPurchaseLink returns every pill that has never been searched
// on the shopping API. Pills already marked price=-1 are excluded; they are
// only retried after ResetNotFoundPills.
func (db *DB) PillsMissingPurchaseLink(ctx context.Context) ([]BackfillTarget, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, company FROM pills
		 WHERE purchase_url IS NULL AND price IS NULL
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list backfill targets: %w", err)
	}
	defer rows.Close()

	var targets []BackfillTarget
	for rows.Next() {
		var t BackfillTarget
		if err := rows.Scan(&t.ID, &t.Name, &t.Company); err != nil {
			return nil, fmt.Errorf("failed to scan backfill target: %w", err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// SavePurchaseMatch persists a validated purchase link and its extracted
// quantity on a pill. The candidate image also becomes the cover image when
// the pill has none.
func (db *DB) SavePurchaseMatch(ctx context.Context, pillID int64, match matching.PurchaseMatch) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE pills
		 SET purchase_url = $1, price = $2, mall_name = $3,
		     amount = $4, unit_type = $5,
		     cover_image = COALESCE(cover_image, NULLIF($6, ''))
		 WHERE id = $7`,
		match.Link, match.Price, match.Mall,
		match.Amount, string(match.UnitType), match.Image, pillID,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase match: %w", err)
	}
	return nil
}

// MarkPurchaseNotFound records the "searched, no seller" sentinel. This is
// distinct from a NULL price, which means the pill was never searched.
func (db *DB) MarkPurchaseNotFound(ctx context.Context, pillID int64) error {
	_, err := db.pool.Exec(ctx, `UPDATE pills SET price = -1 WHERE id = $1`, pillID)
	if err != nil {
		return fmt.Errorf("failed to mark purchase not found: %w", err)
	}
	return nil
}

// ResetNotFoundPills puts every price=-1 pill back into the search queue
// and reports how many were reset.
func (db *DB) ResetNotFoundPills(ctx context.Context) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE pills SET price = NULL, purchase_url = NULL, mall_name = NULL
		 WHERE price = -1`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reset not-found pills: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CatalogSnapshot loads the slim catalog projection the chatbot ranks over.
func (db *DB) CatalogSnapshot(ctx context.Context) ([]CatalogEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, function, shape, appearance, usage_method FROM pills`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		if err := rows.Scan(&e.Name, &e.Function, &e.Shape, &e.Appearance, &e.Usage); err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
