// Package vehicle provides the delivery capability of the depot's fleet.
//
// Vehicle is implemented by Truck and Motorcycle. Each variant owns one
// eligibility rule on the order weight:
//   - Truck carries orders weighing at most its capacity (tonnes x 1000 kg)
//   - Motorcycle carries orders weighing strictly less than 50 kg
//
// AttemptDelivery never touches the order. Callers read Outcome.Delivered
// and update the order status themselves.
package vehicle
