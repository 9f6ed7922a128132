// Package order provides the Order entity of the depot and its status lifecycle.
//
// The package includes:
//   - Order: a delivery request with an identifier, a destination and a weight
//   - Status: the lifecycle of an order, Pending -> Delivered
//
// Key business rules:
//   - An order weighs strictly more than 0 kg and at most MaxWeightKg
//   - Orders are created Pending and become Delivered after a successful attempt
//   - A delivered order never goes back to Pending
package order
