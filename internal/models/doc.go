// Package models defines the core domain models for the Preciosa backend.
//
// # Current Models
//
//   - Identity: stable per-user key that partitions persisted history
//   - User: registered account backing the session boundary
//   - SalarySimulation / PricingSimulation: the two record shapes a
//     calculation produces, persisted as a user's history
//
// # Design Principles
//
//  1. **Tagged union**: Simulation is a sum type discriminated by the "type"
//     field; rendering and aggregation switch exhaustively on the concrete
//     type instead of probing loosely-shaped records.
//  2. **Immutable records**: a simulation is never edited in place; the only
//     lifecycle events are creation and deletion.
//  3. **Stable identity**: the Identity value is created at authentication
//     time and never mutated by the storage layer.
package models
