// Package depot provides the Depot aggregate root.
//
// The depot owns three pools: vehicles nobody drives yet, registered drivers and
// orders waiting for a driver. It keeps two invariants:
//   - a vehicle is either available or held by exactly one driver
//   - an order is either pending or queued on exactly one driver
//
// Every state change records an Event. Events stay buffered on the aggregate
// until PullEvents drains them, which the unit of work does on commit.
//
// Depot is not safe for concurrent use. Callers serialise access through the
// unit of work.
package depot
