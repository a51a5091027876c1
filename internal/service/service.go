// Package service wires the catalog, composer, history and persistence
// bridge into the POS billing engine. Service methods are the UI event
// handlers of the application: one method per cashier action.
//
// The service is the single writer over all stores. The design is
// single-threaded and synchronous; embedding it into a concurrent UI
// requires serializing calls behind one mutex.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/storebill/storebill/internal/bill"
	"github.com/storebill/storebill/internal/catalog"
	"github.com/storebill/storebill/internal/errs"
	"github.com/storebill/storebill/internal/history"
	"github.com/storebill/storebill/internal/metrics"
	"github.com/storebill/storebill/internal/models"
	"github.com/storebill/storebill/internal/storage"
)

// Service owns the in-memory POS state and mirrors it to the bridge.
// In-memory state is authoritative: a failed mirror write is reported as
// a *errs.PersistenceError after the mutation has already taken effect.
type Service struct {
	log       *slog.Logger
	catalog   *catalog.Store
	composer  *bill.Composer
	finalizer *bill.Finalizer
	history   *history.Store
	bridge    storage.Bridge
	metrics   *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger overrides the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithFinalizer overrides the default finalizer (UUID IDs, wall clock).
func WithFinalizer(f *bill.Finalizer) Option {
	return func(s *Service) { s.finalizer = f }
}

// WithMetrics overrides the default metrics, which register on a private
// registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New builds a Service over the given bridge and rehydrates catalog and
// history from it. A missing or unparseable persisted entry falls back to
// the built-in seed catalog and an empty history; rehydration never fails
// the startup.
func New(ctx context.Context, bridge storage.Bridge, opts ...Option) *Service {
	s := &Service{
		log:       slog.Default(),
		composer:  bill.NewComposer(),
		finalizer: bill.NewFinalizer(),
		history:   history.New(),
		bridge:    bridge,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.NewRegistry())
	}
	s.catalog = catalog.New(catalog.DefaultSections(), s.loadProducts(ctx))
	s.history.Replace(s.loadHistory(ctx))
	return s
}

// loadProducts rehydrates the catalog, falling back to the seed list.
func (s *Service) loadProducts(ctx context.Context) []models.Product {
	raw, err := s.bridge.Get(ctx, storage.KeyAllProducts)
	if errors.Is(err, storage.ErrNoKey) {
		s.log.Info("No persisted catalog, seeding defaults")
		return catalog.DefaultProducts()
	}
	if err != nil {
		s.log.Warn("Failed to load persisted catalog, seeding defaults", "error", err)
		return catalog.DefaultProducts()
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.log.Warn("Persisted catalog unparseable, seeding defaults", "error", err)
		return catalog.DefaultProducts()
	}
	return products
}

// loadHistory rehydrates the billing history, falling back to empty.
func (s *Service) loadHistory(ctx context.Context) []models.Bill {
	raw, err := s.bridge.Get(ctx, storage.KeyBillingHistory)
	if errors.Is(err, storage.ErrNoKey) {
		return nil
	}
	if err != nil {
		s.log.Warn("Failed to load billing history, starting empty", "error", err)
		return nil
	}
	var bills []models.Bill
	if err := json.Unmarshal(raw, &bills); err != nil {
		s.log.Warn("Persisted billing history unparseable, starting empty", "error", err)
		return nil
	}
	return bills
}

// AddItemToBill rings up one unit of the catalog product onto the current
// bill. Fails with *errs.NotFoundError for an unknown product ID.
func (s *Service) AddItemToBill(productID string) error {
	p, ok := s.catalog.Get(productID)
	if !ok {
		return &errs.NotFoundError{Kind: "product", ID: productID}
	}
	s.composer.AddItem(p)
	s.metrics.ItemsAdded.Inc()
	return nil
}

// UpdateQuantity sets the quantity of a line on the current bill. A
// quantity of zero or less removes the line; unknown IDs are a no-op.
func (s *Service) UpdateQuantity(productID string, quantity int) {
	s.composer.UpdateQuantity(productID, quantity)
}

// RemoveItem removes a line from the current bill if present.
func (s *Service) RemoveItem(productID string) {
	s.composer.RemoveItem(productID)
}

// ClearBill empties the current bill. Interactive callers confirm with
// the user before invoking this.
func (s *Service) ClearBill() {
	s.composer.Clear()
}

// CurrentBill returns a copy of the in-progress line items in order.
func (s *Service) CurrentBill() []models.BillItem {
	return s.composer.Items()
}

// Totals previews the subtotal, 5% tax and rounded grand total of the
// in-progress bill.
func (s *Service) Totals() (subtotal, tax, total decimal.Decimal) {
	return bill.Totals(s.composer.Items())
}

// FinalizeBill snapshots the current bill into the history and clears the
// composer. The three effects (record, clear, return) happen together or,
// on errs.ErrEmptyBill, not at all. The updated history is then mirrored
// to the bridge; a mirror failure returns the finalized bill alongside a
// *errs.PersistenceError without rolling anything back.
func (s *Service) FinalizeBill(ctx context.Context) (models.Bill, error) {
	finalized, err := s.finalizer.Finalize(s.composer.Items())
	if err != nil {
		return models.Bill{}, err
	}
	s.history.Record(finalized)
	s.composer.Clear()
	s.metrics.BillsFinalized.Inc()
	s.log.Info("Bill finalized",
		"bill_id", finalized.ID,
		"items", len(finalized.Items),
		"total", finalized.TotalAmount,
	)
	return finalized, s.persistHistory(ctx)
}

// History returns the finalized bills, newest first.
func (s *Service) History() []models.Bill {
	return s.history.List()
}

// AddProduct validates and adds a product to the catalog, then mirrors
// the catalog to the bridge.
func (s *Service) AddProduct(ctx context.Context, name string, price decimal.Decimal, imageURL, sectionID string) (models.Product, error) {
	p, err := s.catalog.AddProduct(name, price, imageURL, sectionID)
	if err != nil {
		return models.Product{}, err
	}
	s.metrics.CatalogMutations.WithLabelValues("add").Inc()
	s.log.Info("Product added", "product_id", p.ID, "name", p.Name, "section_id", p.SectionID)
	return p, s.persistCatalog(ctx)
}

// UpdateProduct replaces a catalog product and reconciles any matching
// line on the current bill (name and price refresh, quantity preserved),
// then mirrors the catalog. The reconcile is an explicit direct call so
// the ordering stays deterministic.
func (s *Service) UpdateProduct(ctx context.Context, p models.Product) error {
	if err := s.catalog.UpdateProduct(p); err != nil {
		return err
	}
	s.composer.ReconcileCatalogUpdate(p)
	s.metrics.CatalogMutations.WithLabelValues("update").Inc()
	s.log.Info("Product updated", "product_id", p.ID, "name", p.Name)
	return s.persistCatalog(ctx)
}

// DeleteProduct removes a catalog product (idempotent) and drops any
// matching line from the current bill, then mirrors the catalog.
func (s *Service) DeleteProduct(ctx context.Context, productID string) error {
	s.catalog.DeleteProduct(productID)
	s.composer.ReconcileCatalogDelete(productID)
	s.metrics.CatalogMutations.WithLabelValues("delete").Inc()
	s.log.Info("Product deleted", "product_id", productID)
	return s.persistCatalog(ctx)
}

// ListBySection returns the catalog products of one section in insertion
// order.
func (s *Service) ListBySection(sectionID string) []models.Product {
	return s.catalog.ListBySection(sectionID)
}

// Sections returns the static section list.
func (s *Service) Sections() []models.Section {
	return s.catalog.Sections()
}

// Products returns the full catalog in insertion order.
func (s *Service) Products() []models.Product {
	return s.catalog.Products()
}

// persistCatalog mirrors the catalog to the bridge.
func (s *Service) persistCatalog(ctx context.Context) error {
	return s.persist(ctx, storage.KeyAllProducts, s.catalog.Products())
}

// persistHistory mirrors the billing history to the bridge.
func (s *Service) persistHistory(ctx context.Context) error {
	return s.persist(ctx, storage.KeyBillingHistory, s.history.List())
}

// persist marshals v under key. Failures are counted, logged and wrapped
// as *errs.PersistenceError; the in-memory mutation stands regardless.
func (s *Service) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.bridge.Set(ctx, key, data)
	}
	if err != nil {
		s.metrics.PersistFailures.Inc()
		s.log.Error("Failed to persist state, in-memory state remains authoritative",
			"key", key,
			"error", err,
		)
		return &errs.PersistenceError{Op: "save " + key, Err: err}
	}
	return nil
}
