// Package models defines the core domain models for Storebill.
//
// # Current Models
//
//   - Product: A catalog entry a cashier can ring up, grouped into sections
//   - Section: A named category used for browsing the catalog
//   - BillItem: One line on the in-progress bill, with quantity and total
//   - Bill: An immutable, finalized bill recorded in the billing history
//
// # Design Principles
//
// 1. **Value semantics**: models are plain structs copied freely between stores; mutation happens only inside the owning store
// 2. **Snapshot denormalization**: BillItem carries the product name and price as of the last add or catalog edit, never a live lookup
// 3. **Exact money**: monetary fields use shopspring decimal so total == price * quantity holds exactly, with no float drift
// 4. **Stable JSON**: field tags match the persisted key-value layout, so a round trip through the bridge is lossless
package models
