package db

import "time"

// Pill is one catalog product with its full detail fields, as reported to
// the food-safety registry plus the purchase metadata resolved from the
// shopping API.
type Pill struct {
	ID           int64  `json:"id"`
	ReportNo     string `json:"report_no"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	LicenseNo    string `json:"license_no,omitempty"`
	PermitDate   string `json:"permit_date,omitempty"`
	ShelfLife    string `json:"shelf_life,omitempty"`
	Shape        string `json:"shape,omitempty"`      // tablet, capsule, powder...
	Appearance   string `json:"appearance,omitempty"` // color and form of the product itself
	Function     string `json:"function,omitempty"`   // declared primary functionality
	UsageMethod  string `json:"usage_method,omitempty"`
	Caution      string `json:"caution,omitempty"`
	Storage      string `json:"storage,omitempty"`
	Standard     string `json:"standard,omitempty"`
	RawMaterials string `json:"raw_materials,omitempty"`
	CoverImage   *string `json:"cover_image,omitempty"`

	// Purchase metadata. Price has three states the frontend relies on:
	// nil (never searched), -1 (searched, no seller found), or the actual
	// low price in won.
	PurchaseURL *string `json:"purchase_url,omitempty"`
	Price       *int    `json:"price,omitempty"`
	MallName    *string `json:"mall_name,omitempty"`
	Amount      int     `json:"amount"`
	UnitType    string  `json:"unit_type,omitempty"`

	Nutrients []Nutrient `json:"nutrients,omitempty"`
	Allergens []string   `json:"allergens,omitempty"`
}

// PillSummary is the lightweight list/card view of a pill.
type PillSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Company     string  `json:"company"`
	Description string  `json:"description"` // the standard/ingredient text shown on cards
	CoverImage  *string `json:"cover_image,omitempty"`
	Price       *int    `json:"price,omitempty"`
}

// Nutrient is one substance with its declared content in a pill.
type Nutrient struct {
	SubstanceID   int64   `json:"substance_id"`
	SubstanceName string  `json:"substance_name"`
	Value         float64 `json:"value"`
	Unit          string  `json:"unit"`
}

// Category is a functional grouping of substances (eye health, liver...).
type Category struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Substances []Substance `json:"substances,omitempty"`
}

// Substance is a nutrient/ingredient master record.
type Substance struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Efficacy          string `json:"efficacy,omitempty"`
	SideEffects       string `json:"side_effects,omitempty"`
	RecommendedIntake string `json:"recommended_intake,omitempty"`
}

// PillFilter narrows and pages the catalog listing.
type PillFilter struct {
	SearchType string   // "name", "company", or "ingredient"
	Keyword    string
	Shapes     []string // product form filter, e.g. ["정(알약)", "캡슐"]
	Page       int
	PageSize   int
}

// BackfillTarget identifies a pill that still needs a purchase link.
type BackfillTarget struct {
	ID      int64
	Name    string
	Company string
}

// CatalogEntry is the slim projection of a pill the chatbot ranks over.
type CatalogEntry struct {
	Name       string
	Function   string
	Shape      string
	Appearance string
	Usage      string
}

// CustomPill is a supplement the user typed in themselves, outside the
// registry catalog.
type CustomPill struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Memo        string    `json:"memo,omitempty"`
	Ingredients string    `json:"ingredients,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CabinetEntry is one catalog pill enrolled in a user's cabinet.
type CabinetEntry struct {
	Pill    PillSummary `json:"pill"`
	AddedAt time.Time   `json:"added_at"`
}
