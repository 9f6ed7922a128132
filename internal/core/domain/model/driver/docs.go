// Package driver models the people who perform deliveries.
//
// A Driver is registered without a vehicle, receives at most one vehicle from
// the depot and accumulates orders in assignment order. PerformDeliveries runs
// every queued order through the vehicle and always empties the queue once a
// run has happened. Orders the vehicle could not carry are dropped, not
// returned to the depot.
package driver
