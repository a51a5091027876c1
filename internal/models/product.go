package models

import "github.com/shopspring/decimal"

// Section is a named category grouping products for browsing.
// Sections are static reference data: seeded at startup, never mutated.
type Section struct {
	// ID is the unique identifier for the section (slug format).
	ID string `json:"id"`

	// Name is the display name shown in the section navigation.
	Name string `json:"name"`
}

// Product is one catalog entry. Products are owned exclusively by the
// catalog store; everything else works on copies.
type Product struct {
	// ID is the unique identifier for the product (UUID format for
	// user-added products, slug format for the seeded catalog).
	ID string `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Price is the unit price. Always positive.
	Price decimal.Decimal `json:"price"`

	// ImageURL points at the product thumbnail.
	ImageURL string `json:"imageUrl"`

	// SectionID references the section this product is browsed under.
	SectionID string `json:"sectionId"`
}
