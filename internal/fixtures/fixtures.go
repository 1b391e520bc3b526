// Package fixtures parses and loads the health-food registry JSON dump into
// the database, inferring each product's category from its ingredients.
package fixtures

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pillgood/backend/internal/db"
)

//go:embed schema.json
var fixtureSchema string

// DefaultCategory is assigned when no ingredient votes for anything.
const DefaultCategory = "기타 건강식품"

// NutrientDetail is one ingredient's declared content.
type NutrientDetail struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Fields carries the registry attributes of one product. The JSON keys are
// the registry's own column names.
type Fields struct {
	ReportNo     string                    `json:"PRDLST_REPORT_NO"`
	LicenseNo    string                    `json:"LCNS_NO"`
	Company      string                    `json:"BSSH_NM"`
	Name         string                    `json:"PRDLST_NM"`
	PermitDate   string                    `json:"PRMS_DT"`
	ShelfLife    string                    `json:"POG_DAYCNT"`
	Appearance   string                    `json:"DISPOS"`
	UsageMethod  string                    `json:"NTK_MTHD"`
	Function     string                    `json:"PRIMARY_FNCLTY"`
	Caution      string                    `json:"IFTKN_ATNT_MATR_CN"`
	Storage      string                    `json:"CSTDY_MTHD"`
	Shape        string                    `json:"PRDT_SHAP_CD_NM"`
	Standard     string                    `json:"STDR_STND"`
	RawMaterials string                    `json:"RAWMTRL_NM"`
	CoverImage   string                    `json:"cover_image"`
	Nutrients    map[string]NutrientDetail `json:"nutrients"`
	Allergens    []string                  `json:"allergens"`
}

// Item is one fixture entry.
type Item struct {
	Model  string `json:"model"`
	PK     any    `json:"pk"`
	Fields Fields `json:"fields"`
}

// Parse validates raw fixture JSON against the embedded schema and decodes
// it. A single object is accepted and treated as a one-item list.
func Parse(raw []byte) ([]Item, error) {
	doc := raw
	// Normalize a single object to a list before schema validation.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid fixture JSON: %w", err)
	}
	if _, ok := parsed.(map[string]any); ok {
		doc = append(append([]byte("["), raw...), ']')
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fixtureSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed during load: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, fmt.Errorf("fixture does not match schema: %s: %s", first.Field(), first.Description())
	}

	var items []Item
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return items, nil
}

// Store is the persistence surface the loader needs.
type Store interface {
	GetOrCreateCategory(ctx context.Context, name string) (int64, error)
	GetOrCreateSubstance(ctx context.Context, name string) (int64, error)
	LinkCategorySubstance(ctx context.Context, categoryID, substanceID int64) error
	UpsertPill(ctx context.Context, p *db.Pill) (int64, error)
	ReplaceNutrients(ctx context.Context, pillID int64, nutrients []db.Nutrient) error
	ReplaceAllergens(ctx context.Context, pillID int64, allergens []string) error
}

// Loader writes fixture items into the database.
type Loader struct {
	store Store

	// substance name -> categories it votes for, built from the mapping.
	substanceCategories map[string][]string
	categoryIDs         map[string]int64
	substanceIDs        map[string]int64
}

// NewLoader creates a loader over the given store.
func NewLoader(store Store) *Loader {
	substanceCategories := make(map[string][]string)
	for category, substances := range categorySubstances {
		for _, substance := range substances {
			substanceCategories[substance] = append(substanceCategories[substance], category)
		}
	}
	return &Loader{
		store:               store,
		substanceCategories: substanceCategories,
		categoryIDs:         make(map[string]int64),
		substanceIDs:        make(map[string]int64),
	}
}

// Summary counts the outcomes of one load.
type Summary struct {
	Total  int
	Loaded int
	Failed int
}

// Load seeds the category/substance mapping and upserts every item. A bad
// item is logged and skipped, not fatal.
func (l *Loader) Load(ctx context.Context, items []Item) (*Summary, error) {
	if err := l.seedMapping(ctx); err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(items)}
	for _, item := range items {
		if err := l.loadItem(ctx, item); err != nil {
			log.Printf("[fixtures] report %s: %v", item.Fields.ReportNo, err)
			summary.Failed++
			continue
		}
		summary.Loaded++
	}

	log.Printf("[fixtures] done: %d total, %d loaded, %d failed", summary.Total, summary.Loaded, summary.Failed)
	return summary, nil
}

// seedMapping creates every mapped category and substance and links them.
func (l *Loader) seedMapping(ctx context.Context) error {
	defaultID, err := l.store.GetOrCreateCategory(ctx, DefaultCategory)
	if err != nil {
		return err
	}
	l.categoryIDs[DefaultCategory] = defaultID

	for category, substances := range categorySubstances {
		categoryID, err := l.store.GetOrCreateCategory(ctx, category)
		if err != nil {
			return err
		}
		l.categoryIDs[category] = categoryID

		for _, substance := range substances {
			substanceID, err := l.substanceID(ctx, substance)
			if err != nil {
				return err
			}
			if err := l.store.LinkCategorySubstance(ctx, categoryID, substanceID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Loader) substanceID(ctx context.Context, name string) (int64, error) {
	if id, ok := l.substanceIDs[name]; ok {
		return id, nil
	}
	id, err := l.store.GetOrCreateSubstance(ctx, name)
	if err != nil {
		return 0, err
	}
	l.substanceIDs[name] = id
	return id, nil
}

func (l *Loader) loadItem(ctx context.Context, item Item) error {
	f := item.Fields
	if f.ReportNo == "" {
		return fmt.Errorf("missing report number")
	}

	categoryID := l.categoryIDs[l.inferCategory(f.Nutrients)]

	pill := &db.Pill{
		ReportNo:     f.ReportNo,
		Name:         f.Name,
		Company:      f.Company,
		CategoryID:   categoryID,
		LicenseNo:    f.LicenseNo,
		PermitDate:   f.PermitDate,
		ShelfLife:    f.ShelfLife,
		Shape:        f.Shape,
		Appearance:   f.Appearance,
		Function:     f.Function,
		UsageMethod:  f.UsageMethod,
		Caution:      f.Caution,
		Storage:      f.Storage,
		Standard:     f.Standard,
		RawMaterials: f.RawMaterials,
	}
	if f.CoverImage != "" {
		pill.CoverImage = &f.CoverImage
	}

	pillID, err := l.store.UpsertPill(ctx, pill)
	if err != nil {
		return err
	}

	var nutrients []db.Nutrient
	for name, detail := range f.Nutrients {
		substanceID, err := l.substanceID(ctx, name)
		if err != nil {
			return err
		}
		nutrients = append(nutrients, db.Nutrient{
			SubstanceID:   substanceID,
			SubstanceName: name,
			Value:         detail.Value,
			Unit:          detail.Unit,
		})
	}
	if err := l.store.ReplaceNutrients(ctx, pillID, nutrients); err != nil {
		return err
	}

	return l.store.ReplaceAllergens(ctx, pillID, f.Allergens)
}

// inferCategory picks the category with the most votes across the product's
// ingredients. Ties break on category name so the result is stable.
func (l *Loader) inferCategory(nutrients map[string]NutrientDetail) string {
	votes := make(map[string]int)
	for name := range nutrients {
		for _, category := range l.substanceCategories[name] {
			votes[category]++
		}
	}

	best := DefaultCategory
	bestVotes := 0
	for category, count := range votes {
		if count > bestVotes || (count == bestVotes && bestVotes > 0 && category < best) {
			best = category
			bestVotes = count
		}
	}
	return best
}
