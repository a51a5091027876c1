// Package catalog owns the authoritative product list: the seeded catalog
// plus any user-added products, keyed by unique ID and kept in insertion
// order. The store assumes a single writer (see package service).
package catalog

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storebill/storebill/internal/errs"
	"github.com/storebill/storebill/internal/models"
)

// IDSource supplies opaque unique IDs for new products.
type IDSource func() string

// Store holds the product catalog and the static section list.
type Store struct {
	sections []models.Section
	products []models.Product
	newID    IDSource
	validate *validator.Validate
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource overrides the default UUID-based ID source.
func WithIDSource(fn IDSource) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a catalog store over the given sections and initial products.
// Product order is preserved as insertion order.
func New(sections []models.Section, products []models.Product, opts ...Option) *Store {
	s := &Store{
		sections: sections,
		products: products,
		newID:    uuid.NewString,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// addProductInput carries the fields checked by the validator. Price is
// checked separately because validator has no notion of decimal.
type addProductInput struct {
	Name      string `validate:"required"`
	SectionID string `validate:"required"`
}

// AddProduct validates and appends a new product, assigning it a fresh ID
// guaranteed distinct from every existing product ID.
func (s *Store) AddProduct(name string, price decimal.Decimal, imageURL, sectionID string) (models.Product, error) {
	name = strings.TrimSpace(name)
	in := addProductInput{Name: name, SectionID: sectionID}
	if err := s.validate.Struct(in); err != nil {
		return models.Product{}, validationError(err)
	}
	if !price.IsPositive() {
		return models.Product{}, &errs.ValidationError{Field: "price", Reason: "must be greater than zero"}
	}
	if !s.hasSection(sectionID) {
		return models.Product{}, &errs.ValidationError{Field: "sectionId", Reason: "unknown section " + sectionID}
	}

	p := models.Product{
		ID:        s.freshID(),
		Name:      name,
		Price:     price,
		ImageURL:  imageURL,
		SectionID: sectionID,
	}
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct replaces all fields of the stored product with the same ID.
func (s *Store) UpdateProduct(p models.Product) error {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return &errs.NotFoundError{Kind: "product", ID: p.ID}
}

// DeleteProduct removes the product with the given ID. Deleting an unknown
// ID is a no-op, which makes the operation idempotent.
func (s *Store) DeleteProduct(id string) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Get returns the product with the given ID.
func (s *Store) Get(id string) (models.Product, bool) {
	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i], true
		}
	}
	return models.Product{}, false
}

// ListBySection returns the products of one section in catalog insertion
// order. The result is empty when no product matches.
func (s *Store) ListBySection(sectionID string) []models.Product {
	var out []models.Product
	for i := range s.products {
		if s.products[i].SectionID == sectionID {
			out = append(out, s.products[i])
		}
	}
	return out
}

// Products returns a copy of the full catalog in insertion order.
func (s *Store) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Sections returns a copy of the section list.
func (s *Store) Sections() []models.Section {
	out := make([]models.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Replace swaps in a rehydrated product list wholesale.
func (s *Store) Replace(products []models.Product) {
	s.products = products
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int { return len(s.products) }

func (s *Store) hasSection(id string) bool {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return true
		}
	}
	return false
}

// freshID draws from the ID source until the ID collides with no existing
// product.
func (s *Store) freshID() string {
	for {
		id := s.newID()
		if _, exists := s.Get(id); !exists {
			return id
		}
	}
}

// validationError maps the first validator failure onto the error taxonomy.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &errs.ValidationError{Field: "input", Reason: err.Error()}
	}
	switch verrs[0].Field() {
	case "Name":
		return &errs.ValidationError{Field: "name", Reason: "must not be empty"}
	case "SectionID":
		return &errs.ValidationError{Field: "sectionId", Reason: "must not be empty"}
	default:
		return &errs.ValidationError{Field: verrs[0].Field(), Reason: verrs[0].Tag()}
	}
}
