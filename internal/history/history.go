// Package history keeps the append-only record of finalized bills,
// ordered most recent first. Bills are immutable once recorded; there is
// no update or delete.
package history

import "github.com/storebill/storebill/internal/models"

// Store owns the finalized bills.
type Store struct {
	bills []models.Bill
}

// New returns an empty history.
func New() *Store {
	return &Store{}
}

// Record prepends a finalized bill, keeping the newest bill first. There
// is no deduplication and no cap on size.
func (s *Store) Record(b models.Bill) {
	s.bills = append([]models.Bill{b}, s.bills...)
}

// List returns a copy of the recorded bills, newest first.
func (s *Store) List() []models.Bill {
	out := make([]models.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// Replace swaps in a rehydrated bill list wholesale.
func (s *Store) Replace(bills []models.Bill) {
	s.bills = bills
}

// Len returns the number of recorded bills.
func (s *Store) Len() int { return len(s.bills) }
