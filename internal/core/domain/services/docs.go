// Package services holds the dispatch domain services that work across the
// order and vehicle aggregates.
//
// The package includes:
//   - LoadCalculator: measures an order's load, bounding box and price from the catalog
//   - Fleet: the occupancy working copy shared by both placement entry points
//   - AssignmentEngine: incremental placement of one new order
//   - Rebalancer: full recomputation of every active assignment
//   - OutcomeReporter: transitions and audit entries derived from an outcome
//
// Eligibility and ranking are implemented once and used by both the engine and
// the rebalancer, so a vehicle accepted by one is accepted by the other.
package services
