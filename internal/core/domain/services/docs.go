// Package services provides domain services that orchestrate operations no
// single entity owns.
//
// The package includes:
//   - DeliveryDispatcher: picks the driver that should carry a pending order
//     and queues the order through the depot
package services
