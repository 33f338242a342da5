// Package order provides domain entities and business logic for order lifecycle
// management in the fosso backend. It implements the Order aggregate root with
// per-line-item fulfillment tracking, financial totals, and status aggregation.
//
// The package includes:
//   - Order: The aggregate root that manages identity, totals, line items, and lifecycle
//   - Detail: A line item with price and shipping-cost snapshots frozen at checkout
//   - Track: The fulfillment status record attached to a line item
//   - Status: The closed status taxonomy shared by orders and line items
//   - Totals: The monetary breakdown (products cost, subtotal, shipping, tax, total)
//   - Address: The immutable shipping address snapshot copied at creation
//
// Key business rules:
//   - The order total always equals subtotal + shipping cost + tax
//   - The subtotal equals the sum of subtotals over non-cancelled line items
//   - A cancelled line item is terminal and excluded from all future aggregation
//   - The order-level status is derived from the distinct statuses of
//     non-cancelled line items: a single common value wins, otherwise Processing
//   - Shipped and Delivered orders cannot be cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
