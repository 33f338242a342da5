// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fosso backend. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingEngine: A domain service computing and recomputing order monetary totals
//
// Domain services coordinate between aggregates and value objects, implementing
// business logic that spans multiple concerns following Domain-Driven Design principles.
package services
