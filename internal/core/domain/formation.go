package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormationStatus is the visibility state of a course offering.
type FormationStatus string

const (
	StatusPublished FormationStatus = "publie"
	StatusDraft     FormationStatus = "brouillon"
)

// Valid reports whether s is one of the two visibility states.
func (s FormationStatus) Valid() bool {
	return s == StatusPublished || s == StatusDraft
}

// Formation is a course offering exposed through the catalog.
type Formation struct {
	ID          int64               `json:"id"`
	Title       string              `json:"titre"`
	Description string              `json:"description"`
	Duration    string              `json:"duree"`
	Price       decimal.NullDecimal `json:"prix"`
	Level       string              `json:"niveau"`
	Category    string              `json:"categorie"`
	Status      FormationStatus     `json:"statut"`
	Image       string              `json:"image"`
	CreatedAt   time.Time           `json:"created_at"`
}

// FormationPatch lists the fields an administrator may change. A nil field
// is left untouched.
type FormationPatch struct {
	Title       *string
	Description *string
	Duration    *string
	Price       *decimal.Decimal
	Level       *string
	Category    *string
	Status      *FormationStatus
	Image       *string
}

// Empty reports whether the patch changes nothing.
func (p FormationPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Duration == nil &&
		p.Price == nil && p.Level == nil && p.Category == nil &&
		p.Status == nil && p.Image == nil
}

// Apply copies every set field of the patch onto f.
func (p FormationPatch) Apply(f *Formation) {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Duration != nil {
		f.Duration = *p.Duration
	}
	if p.Price != nil {
		f.Price = decimal.NewNullDecimal(*p.Price)
	}
	if p.Level != nil {
		f.Level = *p.Level
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
}

// PriceSort selects the ordering of a catalog listing.
type PriceSort string

const (
	SortNewest    PriceSort = ""
	SortPriceAsc  PriceSort = "prix_asc"
	SortPriceDesc PriceSort = "prix_desc"
)

// Valid reports whether s is a known ordering.
func (s PriceSort) Valid() bool {
	return s == SortNewest || s == SortPriceAsc || s == SortPriceDesc
}

// CatalogFilter narrows a formation listing. Zero values match everything.
type CatalogFilter struct {
	PublishedOnly bool
	Category      string
	Level         string
	Duration      string
	Sort          PriceSort
}

// Matches reports whether f passes the filter's predicates.
func (c CatalogFilter) Matches(f *Formation) bool {
	if c.PublishedOnly && f.Status != StatusPublished {
		return false
	}
	if c.Category != "" && f.Category != c.Category {
		return false
	}
	if c.Level != "" && f.Level != c.Level {
		return false
	}
	if c.Duration != "" && f.Duration != c.Duration {
		return false
	}
	return true
}
